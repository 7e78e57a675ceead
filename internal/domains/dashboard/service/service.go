package service

import (
	"context"

	"cruisedesk/infras/otel"
	charterModel "cruisedesk/internal/domains/charter/model"
	charterRepo "cruisedesk/internal/domains/charter/repository"
	cruiseModel "cruisedesk/internal/domains/cruise/model"
	cruiseRepo "cruisedesk/internal/domains/cruise/repository"
	"cruisedesk/internal/domains/dashboard/model/dto"
	departureModel "cruisedesk/internal/domains/departure/model"
	departureRepo "cruisedesk/internal/domains/departure/repository"
	hotelModel "cruisedesk/internal/domains/hotel/model"
	hotelRepo "cruisedesk/internal/domains/hotel/repository"
	userModel "cruisedesk/internal/domains/user/model"
	userRepo "cruisedesk/internal/domains/user/repository"
	"cruisedesk/shared/constant"
	gDto "cruisedesk/shared/dto"
	gRepo "cruisedesk/shared/repository"

	"golang.org/x/sync/errgroup"
)

type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	cruises    cruiseRepo.Cruise
	hotels     hotelRepo.Hotel
	charters   charterRepo.Charter
	departures departureRepo.Departure
	users      userRepo.User
	otel       otel.Otel
}

func New(
	cruises cruiseRepo.Cruise,
	hotels hotelRepo.Hotel,
	charters charterRepo.Charter,
	departures departureRepo.Departure,
	users userRepo.User,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		cruises:    cruises,
		hotels:     hotels,
		charters:   charters,
		departures: departures,
		users:      users,
		otel:       otel,
	}
}

// Summary asks every collection for a single item and reads its total. The first failure cancels
// the remaining calls and is returned as is.
func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(count[cruiseModel.Cruise](ctx, s.cruises, &res.Cruises))
	group.Go(count[hotelModel.Hotel](ctx, s.hotels, &res.Hotels))
	group.Go(count[charterModel.Charter](ctx, s.charters, &res.Charters))
	group.Go(count[departureModel.Departure](ctx, s.departures, &res.Departures))
	group.Go(count[userModel.User](ctx, s.users, &res.Users))

	if err = group.Wait(); err != nil {
		return dto.SummaryResponse{}, err //nolint:wrapcheck
	}

	return res, nil
}

type lister[T any] interface {
	List(ctx context.Context, query gDto.QueryParams) (gRepo.List[T], error)
}

func count[T any](ctx context.Context, repo lister[T], total *int) func() error {
	return func() error {
		list, err := repo.List(ctx, gDto.QueryParams{Page: 1, Limit: 1})
		if err != nil {
			return err //nolint:wrapcheck
		}

		*total = list.Pagination.Total

		return nil
	}
}
