package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/EspacoLashStudio/studio-agenda/internal/config"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.WorkingHours{},
		&models.BlockedSlot{},
		&models.BookingTimeSlot{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Trava de corrida no próprio banco: dois agendamentos vivos da
	// mesma profissional nunca começam no mesmo instante. Sobreposições
	// parciais ficam a cargo da transação de criação, que serializa as
	// escritas da profissional antes do recheck. Sem o índice essa
	// segunda linha de defesa não existe, então falha aqui derruba o boot.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_live_start
        ON appointments (user_id, appointment_date, appointment_time)
        WHERE status IN ('scheduled', 'confirmed') AND deleted_at IS NULL
    `).Error; err != nil {
		log.Fatal("failed to create live-appointment index", zap.Error(err))
	}

	db.Exec(`
        UPDATE users
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
