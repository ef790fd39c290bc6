package notify

import (
	"fmt"
	"strconv"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"github.com/EspacoLashStudio/studio-agenda/internal/config"
	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/timezone"
)

// Job de lembrete: leitura pura sobre a agenda, nunca mexe em
// disponibilidade nem em agendamentos. Roda uma vez por dia e avisa
// as clientes do dia seguinte.
type Reminder struct {
	db   *gorm.DB
	cfg  *config.Config
	log  *zap.Logger
	cron *cron.Cron
}

func NewReminder(db *gorm.DB, cfg *config.Config, log *zap.Logger) *Reminder {
	return &Reminder{
		db:   db,
		cfg:  cfg,
		log:  log,
		cron: cron.New(cron.WithLocation(timezone.Location(""))),
	}
}

func (r *Reminder) Start() error {
	_, err := r.cron.AddFunc("0 18 * * *", r.sendTomorrowReminders)
	if err != nil {
		return err
	}

	r.cron.Start()
	r.log.Info("reminder scheduler started")
	return nil
}

func (r *Reminder) Stop() {
	r.cron.Stop()
}

func (r *Reminder) sendTomorrowReminders() {
	tomorrow := timezone.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var appointments []models.Appointment
	err := r.db.
		Preload("Client").
		Preload("Service", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where(
			"appointment_date = ? AND status IN ?",
			tomorrow,
			[]string{
				string(domain.StatusScheduled),
				string(domain.StatusConfirmed),
			},
		).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		r.log.Error("reminder query failed", zap.Error(err))
		return
	}

	r.log.Info("sending reminders",
		zap.String("date", tomorrow),
		zap.Int("count", len(appointments)),
	)

	for _, ap := range appointments {
		if ap.Client.Email == "" {
			continue
		}

		if err := r.sendReminderEmail(&ap); err != nil {
			r.log.Warn("reminder send failed",
				zap.Uint("appointment_id", ap.ID),
				zap.Error(err),
			)
			continue
		}
	}
}

func (r *Reminder) sendReminderEmail(ap *models.Appointment) error {
	if r.cfg.SMTPHost == "" {
		return fmt.Errorf("smtp not configured")
	}

	body := fmt.Sprintf(`
		<p>Olá, %s!</p>
		<p>Passando para lembrar do seu horário amanhã:</p>
		<ul>
			<li><strong>Serviço:</strong> %s</li>
			<li><strong>Data:</strong> %s</li>
			<li><strong>Horário:</strong> %s</li>
		</ul>
		<p>Se precisar remarcar, avise com antecedência. Até lá!</p>
	`, ap.Client.Name, ap.Service.Name, ap.AppointmentDate, ap.AppointmentTime)

	m := gomail.NewMessage()
	m.SetHeader("From", r.cfg.SMTPUser)
	m.SetHeader("To", ap.Client.Email)
	m.SetHeader("Subject", "Lembrete: seu horário amanhã")
	m.SetBody("text/html", body)

	port, _ := strconv.Atoi(r.cfg.SMTPPort)

	d := gomail.NewDialer(r.cfg.SMTPHost, port, r.cfg.SMTPUser, r.cfg.SMTPPass)
	return d.DialAndSend(m)
}
