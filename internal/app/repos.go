package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/data/store"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

func wireRepos(db *gorm.DB, log *logger.Logger) store.Repos {
	log.Info("Wiring repos...")
	return store.NewRepos(db, log)
}
