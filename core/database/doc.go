// Package database opens the GORM connection behind the internal dispute store.
//
// Two drivers are supported: sqlite (the default, usually ":memory:") and mysql.
// The sqlite pool is pinned to a single connection so an in-memory database is
// shared by every query.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definition so stores
// can verify their schema before serving data.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("database connection failed: %w", err)
//	}
//
//	missing, err := database.MissingColumns(db, "disputes", []string{"dispute_id", "amount"})
package database
