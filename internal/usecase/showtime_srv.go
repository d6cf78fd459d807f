package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-seating/internal/data/repository"
	"cinema-seating/internal/dto/request"
	"cinema-seating/internal/dto/response"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	// GetWeek returns the 7-day date strip starting at start (YYYY-MM-DD,
	// empty for today). Paging back is offered only when the strip does not
	// start today.
	GetWeek(ctx context.Context, start string) (*response.WeekResponse, error)
	GetByDate(ctx context.Context, date string) (*response.ShowtimesResponse, error)
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
		now:  time.Now,
	}
}

func (s *showtimeService) GetWeek(ctx context.Context, start string) (*response.WeekResponse, error) {
	today := s.now()
	from := today
	if start != "" {
		parsed, err := time.ParseInLocation(utils.DateLayout, start, today.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid start date %s: %w", start, err)
		}
		from = parsed
	}

	dates := utils.WeekFrom(from)
	days := make([]response.WeekDay, len(dates))
	for i, d := range dates {
		days[i] = response.WeekDay{
			Date:    d.Format(utils.DateLayout),
			Day:     d.Format("02"),
			IsToday: utils.SameDay(d, today),
		}
	}

	week := &response.WeekResponse{
		Days:        days,
		HasPrevious: !utils.SameDay(dates[0], today),
		NextStart:   dates[0].AddDate(0, 0, utils.WeekLength).Format(utils.DateLayout),
	}
	if week.HasPrevious {
		week.PrevStart = dates[0].AddDate(0, 0, -utils.WeekLength).Format(utils.DateLayout)
	}

	return week, nil
}

func (s *showtimeService) GetByDate(ctx context.Context, date string) (*response.ShowtimesResponse, error) {
	req := request.ShowtimeDateRequest{Date: date}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	schedules, err := s.repo.Schedule.FindByDate(ctx, date)
	if err != nil {
		s.log.Error("Failed to get showtimes", zap.Error(err), zap.String("date", date))
		return nil, fmt.Errorf("get showtimes: %w", err)
	}

	// group by movie, keeping the repository's order
	movies := make([]response.MovieShowtimes, 0)
	index := make(map[int64]int)
	for _, sc := range schedules {
		i, ok := index[sc.MovieID]
		if !ok {
			i = len(movies)
			index[sc.MovieID] = i
			movies = append(movies, response.MovieShowtimes{
				MovieID:        sc.MovieID,
				MovieName:      sc.MovieName,
				MovieImagePath: sc.MovieImagePath,
				Slots:          []response.ShowtimeSlot{},
			})
		}
		movies[i].Slots = append(movies[i].Slots, response.ShowtimeSlot{
			ScheduleID: sc.ID,
			RoomName:   sc.RoomName,
			TimeStart:  sc.TimeStart,
			TimeEnd:    sc.TimeEnd,
		})
	}

	s.log.Info("Showtimes retrieved",
		zap.String("date", date),
		zap.Int("movies", len(movies)),
		zap.Int("schedules", len(schedules)),
	)

	return &response.ShowtimesResponse{Date: date, Movies: movies}, nil
}
