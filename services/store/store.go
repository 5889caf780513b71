package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ormcheatsheet/pkg/logger"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Options configures the in-memory server and its connection pool.
type Options struct {
	Database       string
	Host           string
	Port           int // 0 = pick a free port
	MaxOpenConns   int
	StartupTimeout time.Duration
	Logger         gormlogger.Interface
}

func (o Options) withDefaults() Options {
	if o.Database == "" {
		o.Database = "cheatsheet"
	}
	if o.Host == "" {
		o.Host = "localhost"
	}
	if o.MaxOpenConns <= 0 {
		o.MaxOpenConns = 8
	}
	if o.StartupTimeout <= 0 {
		o.StartupTimeout = 5 * time.Second
	}
	if o.Logger == nil {
		o.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return o
}

// Store is a long-lived in-memory MySQL-compatible server with a GORM pool
// connected to it over the wire protocol. Build it once, share it, and
// Acquire a Session per unit of work.
type Store struct {
	ID       string
	Server   *server.Server
	Engine   *sqle.Engine
	Provider *memory.DbProvider
	Database string
	Addr     string
	DB       *gorm.DB

	closeOnce sync.Once
	closed    chan struct{}
}

// Open starts the in-memory server, waits until it accepts TCP connections and
// opens a GORM pool to it.
func Open(ctx context.Context, opts Options) (*Store, error) {
	opts = opts.withDefaults()

	port := opts.Port
	if port == 0 {
		p, err := GetFreePort()
		if err != nil {
			return nil, fmt.Errorf("failed to get free port: %w", err)
		}
		port = p
	}
	addr := fmt.Sprintf("%s:%d", opts.Host, port)
	storeID := uuid.NewString()

	memDB := memory.NewDatabase(opts.Database)
	provider := memory.NewDBProvider(memDB)
	engine := sqle.NewDefault(provider)

	config := server.Config{
		Protocol: "tcp",
		Address:  addr,
	}
	s, err := server.NewServer(config, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	go func() {
		if err := s.Start(); err != nil {
			logger.Debugf("Server for store %s stopped: %v", storeID, err)
		}
	}()

	if err := waitReady(ctx, addr, opts.StartupTimeout); err != nil {
		s.Close()
		return nil, fmt.Errorf("server failed to start for store %s: %w", storeID, err)
	}
	logger.Infof("Started in-memory MySQL server on %s for store %s", addr, storeID)

	dsn := fmt.Sprintf("root:@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&interpolateParams=true", addr, opts.Database)
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 opts.Logger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("GORM connection to %s failed: %w", addr, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetMaxIdleConns(opts.MaxOpenConns)

	return &Store{
		ID:       storeID,
		Server:   s,
		Engine:   engine,
		Provider: provider,
		Database: opts.Database,
		Addr:     addr,
		DB:       gdb,
		closed:   make(chan struct{}),
	}, nil
}

// waitReady polls addr until it accepts a TCP connection or the timeout expires.
func waitReady(ctx context.Context, addr string, timeout time.Duration) error {
	readyCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-readyCtx.Done():
			return readyCtx.Err()
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
			if err == nil {
				conn.Close()
				return nil
			}
		}
	}
}

// Close shuts down the connection pool and the server. Safe to call more than once.
func (s *Store) Close() error {
	var closeErr error
	s.closeOnce.Do(func() {
		close(s.closed)
		if sqlDB, err := s.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = fmt.Errorf("failed to close connection pool: %w", err)
			}
		}
		if err := s.Server.Close(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to close server: %w", err)
		}
		logger.Infof("Closed in-memory MySQL server for store %s", s.ID)
	})
	return closeErr
}

func (s *Store) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// Ping checks that the pool can reach the server.
func (s *Store) Ping(ctx context.Context) error {
	if s.isClosed() {
		return ErrClosed
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ExecuteRaw runs one SQL statement directly on the engine, bypassing the wire
// protocol, and returns every row keyed by column name.
func (s *Store) ExecuteRaw(ctx context.Context, query string) ([]map[string]interface{}, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}

	session := memory.NewSession(sql.NewBaseSession(), s.Provider)
	sqlCtx := sql.NewContext(ctx, sql.WithSession(session))
	sqlCtx.SetCurrentDatabase(s.Database)

	schema, rowIter, _, err := s.Engine.Query(sqlCtx, query)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	defer rowIter.Close(sqlCtx)

	results := []map[string]interface{}{}
	for {
		row, err := rowIter.Next(sqlCtx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch row: %w", err)
		}

		rowMap := make(map[string]interface{}, len(schema))
		for i, col := range schema {
			rowMap[col.Name] = row[i]
		}
		results = append(results, rowMap)
	}

	return results, nil
}

// ShowCreateTable returns the CREATE TABLE statement the engine holds for table.
func (s *Store) ShowCreateTable(ctx context.Context, table string) (string, error) {
	rows, err := s.ExecuteRaw(ctx, fmt.Sprintf("SHOW CREATE TABLE `%s`", table))
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("no definition returned for table %s", table)
	}
	ddl, ok := rows[0]["Create Table"].(string)
	if !ok {
		return "", fmt.Errorf("unexpected definition type %T for table %s", rows[0]["Create Table"], table)
	}
	return ddl, nil
}

// GetFreePort finds an available TCP port.
func GetFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}
