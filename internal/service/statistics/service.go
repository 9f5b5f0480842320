package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/softcafe/clinic-admin-api/internal/model"
	"github.com/softcafe/clinic-admin-api/internal/repository"
)

// recentActivityLimit bounds the activity feed on the dashboards.
const recentActivityLimit = 5

type Service struct {
	staffRepo       repository.StaffRepository
	appointmentRepo repository.AppointmentRepository
	logRepo         repository.LogRepository

	now func() time.Time
}

func NewService(staffRepo repository.StaffRepository, appointmentRepo repository.AppointmentRepository, logRepo repository.LogRepository) *Service {
	return &Service{
		staffRepo:       staffRepo,
		appointmentRepo: appointmentRepo,
		logRepo:         logRepo,
		now:             time.Now,
	}
}

// todayWindow recomputes the [startOfToday, startOfTomorrow) range at call
// time, so every invocation reflects the current day.
func (s *Service) todayWindow() (time.Time, time.Time) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}

// ManagerStats builds the manager dashboard counts plus the recent
// activity feed. Counts are valid only at the instant computed; nothing is
// cached between calls.
func (s *Service) ManagerStats(ctx context.Context) (*model.ManagerStats, error) {
	start, end := s.todayWindow()

	totalStaff, err := s.staffRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count staff: %w", err)
	}

	staffOnDuty, err := s.staffRepo.CountByStatus(ctx, model.StaffStatusOnDuty)
	if err != nil {
		return nil, fmt.Errorf("failed to count on-duty staff: %w", err)
	}

	dailyAppointments, err := s.appointmentRepo.CountCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count daily appointments: %w", err)
	}

	logs, err := s.logRepo.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent logs: %w", err)
	}

	return &model.ManagerStats{
		TotalStaff:        totalStaff,
		StaffOnDuty:       staffOnDuty,
		DailyAppointments: dailyAppointments,
		Activity:          toActivity(logs),
	}, nil
}

// ReceptionistStats is the receptionist-scoped variant: today's
// appointments and the activity feed are restricted to the given staff id.
func (s *Service) ReceptionistStats(ctx context.Context, staffID uuid.UUID) (*model.ReceptionistStats, error) {
	start, end := s.todayWindow()

	appointments, err := s.appointmentRepo.ListCreatedBetweenForReceptionist(ctx, start, end, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receptionist appointments: %w", err)
	}

	logs, err := s.logRepo.ListRecentForStaff(ctx, staffID, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receptionist logs: %w", err)
	}

	stats := &model.ReceptionistStats{
		Total:    int64(len(appointments)),
		Activity: toActivity(logs),
	}
	for _, apt := range appointments {
		switch apt.Status {
		case model.AppointmentStatusComplete:
			stats.Complete++
		case model.AppointmentStatusPending:
			stats.Pending++
		}
	}
	return stats, nil
}

func toActivity(logs []*model.LogEntry) []model.ActivityEntry {
	activity := make([]model.ActivityEntry, 0, len(logs))
	for _, entry := range logs {
		activity = append(activity, model.ActivityEntry{
			ID:     entry.ID,
			Action: entry.Action,
			Time:   entry.Time,
		})
	}
	return activity
}
