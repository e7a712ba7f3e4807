package driver

import (
	"fmt"
	"time"
)

type config struct {
	foreignKeys bool
	busyTimeout time.Duration
	readOnly    bool
}

func defaultConfig() config {
	return config{
		foreignKeys: true,
		busyTimeout: 5 * time.Second,
	}
}

// Option configures a database handle at open time.
type Option func(*config)

// WithForeignKeys toggles foreign-key enforcement. It is on by default; the
// mapping layer's cascade and set-null delete policies depend on it.
func WithForeignKeys(on bool) Option {
	return func(c *config) { c.foreignKeys = on }
}

// WithBusyTimeout sets how long the engine waits on a locked database before
// failing. The default is five seconds.
func WithBusyTimeout(d time.Duration) Option {
	return func(c *config) { c.busyTimeout = d }
}

// WithReadOnly opens the database in query-only mode; every mutating
// statement fails.
func WithReadOnly() Option {
	return func(c *config) { c.readOnly = true }
}

func (c config) pragmas() []string {
	fk := "OFF"
	if c.foreignKeys {
		fk = "ON"
	}
	pragmas := []string{
		"PRAGMA foreign_keys = " + fk,
		fmt.Sprintf("PRAGMA busy_timeout = %d", c.busyTimeout.Milliseconds()),
	}
	if c.readOnly {
		pragmas = append(pragmas, "PRAGMA query_only = ON")
	}
	return pragmas
}
