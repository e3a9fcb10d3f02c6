package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	pingPluginSingleton *pingPlugin
)

// pingPlugin pings the database before every operation and retries until the
// connection comes back or the context gives up. Papers over short
// connection drops without surfacing them to callers.
type pingPlugin struct{}

func init() {
	pingPluginSingleton = &pingPlugin{}
}

func (p *pingPlugin) Name() string {
	return "team-maker:ping"
}

func (p *pingPlugin) Initialize(db *gorm.DB) error {
	transactionEnabled := func(db *gorm.DB) bool {
		return !db.SkipDefaultTransaction
	}
	transactionDisabled := func(db *gorm.DB) bool {
		return db.SkipDefaultTransaction
	}

	temp := db.Callback().Create()
	temp.Match(transactionEnabled).Before("gorm:begin_transaction").Register("team-maker:ping", pingCallback)
	temp.Match(transactionDisabled).Before("gorm:before_create").Register("team-maker:ping", pingCallback)
	temp = nil

	db.Callback().Query().Before("gorm:query").Register("team-maker:ping", pingCallback)

	temp = db.Callback().Delete()
	temp.Match(transactionEnabled).Before("gorm:begin_transaction").Register("team-maker:ping", pingCallback)
	temp.Match(transactionDisabled).Before("gorm:before_delete").Register("team-maker:ping", pingCallback)
	temp = nil

	temp = db.Callback().Update()
	temp.Match(transactionEnabled).Before("gorm:begin_transaction").Register("team-maker:ping", pingCallback)
	temp.Match(transactionDisabled).Before("gorm:setup_reflect_value").Register("team-maker:ping", pingCallback)
	temp = nil

	db.Callback().Row().Before("gorm:row").Register("team-maker:ping", pingCallback)
	db.Callback().Raw().Before("gorm:raw").Register("team-maker:ping", pingCallback)

	return nil
}

func pingCallback(db *gorm.DB) {
	// tenta até conseguir ou até o contexto expirar
	err := internalPingCallback(db)
	for err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			if db.Error == nil {
				db.Error = err
			}
			return
		}

		time.Sleep(20 * time.Millisecond)
		err = internalPingCallback(db)
	}
}

func internalPingCallback(db *gorm.DB) error {
	internalDb, err := db.DB()
	if err != nil {
		return err
	}

	if db.Statement != nil && db.Statement.Context != nil {
		return internalDb.PingContext(db.Statement.Context)
	}
	return internalDb.Ping()
}
