package database

import (
	"Savora/config"
	"Savora/models"
	"Savora/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
// TranslateError 打开后唯一索引冲突统一成 gorm.ErrDuplicatedKey，
// 创建路径靠它兜底并发下的重复写入
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.SavedRecipe{},
	); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}

	log.L.Info("connect database success")
	return db
}
