package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cruisedesk/infras/otel"
	"cruisedesk/internal/domains/cabin/model"
	"cruisedesk/internal/domains/cabin/model/dto"
	"cruisedesk/internal/domains/cabin/repository"
	"cruisedesk/shared/constant"
	"cruisedesk/shared/failure"
	gModel "cruisedesk/shared/model"
	gRepo "cruisedesk/shared/repository"
	"cruisedesk/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	messageSkipped = "skipped after an earlier failure"
	labelNewCabin  = "new"
)

type Cabin interface {
	Sync(ctx context.Context, cruiseID string, req dto.SyncCabinsRequest) (dto.SyncCabinsResponse, error)
}

type serviceImpl struct {
	repo repository.Cabin
	otel otel.Otel
}

func New(repo repository.Cabin, otel otel.Otel) Cabin {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Sync applies the planned operations one at a time. The first failure stops the batch and is
// returned together with the per-operation results; later operations are reported as skipped.
func (s *serviceImpl) Sync(ctx context.Context, cruiseID string, req dto.SyncCabinsRequest) (res dto.SyncCabinsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cabin.Sync")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ops := Plan(gModel.ID(cruiseID), req)

	for _, op := range ops {
		if op.Op == dto.OpDelete {
			continue
		}

		if vErr := validator.ValidateStruct(&op.Body); vErr != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("cabin %s: %s", label(op), vErr.Error()))
		}
	}

	res.Results = make([]dto.OperationResult, 0, len(ops))
	res.Cabins = []json.RawMessage{}

	for _, op := range ops {
		result := dto.OperationResult{
			Op:     op.Op,
			ID:     op.ID,
			TempID: op.TempID,
		}

		if err != nil {
			result.Status = dto.StatusSkipped
			result.Message = messageSkipped
			res.Results = append(res.Results, result)

			continue
		}

		item, opErr := s.execute(ctx, op)
		if opErr != nil {
			log.Error().Err(opErr).Str("op", op.Op).Str("cabin", label(op)).Msg("cabin sync stopped")

			err = opErr
			result.Status = dto.StatusFailed
			result.StatusCode = failure.GetCode(opErr)
			result.Message = opErr.Error()
			res.Results = append(res.Results, result)

			continue
		}

		result.Status = dto.StatusSucceeded
		result.StatusCode = item.StatusCode
		result.Success = true
		result.Message = item.Message

		if item.HasData() && op.Op != dto.OpDelete {
			if result.ID == "" {
				result.ID = item.ID()
			}

			res.Cabins = append(res.Cabins, item.Data)
		}

		res.Results = append(res.Results, result)
	}

	scope.AddEvent(fmt.Sprintf("cabin sync finished with %d operations", len(ops)))

	return res, err
}

func (s *serviceImpl) execute(ctx context.Context, op dto.Operation) (gRepo.Item[model.Cabin], error) {
	switch op.Op {
	case dto.OpDelete:
		return s.repo.Delete(ctx, op.ID) //nolint:wrapcheck
	case dto.OpUpdate:
		return s.repo.Update(ctx, op.ID, op.Body, false) //nolint:wrapcheck
	default:
		return s.repo.Create(ctx, op.Body) //nolint:wrapcheck
	}
}

// Plan merges the drafts of one cruise into upstream operations: deletes first, then updates,
// then creates, each group in input order.
//
// Repeated drafts for the same cabin collapse into the last one, kept at the first position.
// A new cabin that is also deleted never reaches the upstream.
func Plan(cruiseID gModel.ID, req dto.SyncCabinsRequest) []dto.Operation {
	drafts := make([]dto.CabinDraft, 0, len(req.Cabins))
	positions := map[string]int{}
	newKeys := map[string]bool{}

	for _, draft := range req.Cabins {
		key := draft.Key()
		if key == "" {
			drafts = append(drafts, draft)

			continue
		}

		if draft.IsNew() {
			newKeys[key] = true
		}

		if i, ok := positions[key]; ok {
			drafts[i] = draft

			continue
		}

		positions[key] = len(drafts)
		drafts = append(drafts, draft)
	}

	removed := map[string]bool{}
	for _, id := range req.Deleted {
		if !id.IsZero() {
			removed[id.String()] = true
		}
	}

	var deletes, updates, creates []dto.Operation

	queued := map[string]bool{}
	queueDelete := func(id string) {
		if queued[id] {
			return
		}

		queued[id] = true
		deletes = append(deletes, dto.Operation{Op: dto.OpDelete, ID: id})
	}

	for _, id := range req.Deleted {
		key := id.String()
		if key == "" || newKeys[key] || strings.HasPrefix(key, dto.TempIDPrefix) {
			continue
		}

		queueDelete(key)
	}

	for _, draft := range drafts {
		key := draft.Key()
		gone := draft.Deleted || (key != "" && removed[key])

		switch {
		case gone && draft.IsNew():
			continue
		case gone:
			queueDelete(key)
		case draft.IsNew():
			creates = append(creates, dto.Operation{Op: dto.OpCreate, TempID: key, Body: draft.ToRequest(cruiseID)})
		default:
			updates = append(updates, dto.Operation{Op: dto.OpUpdate, ID: key, Body: draft.ToRequest(cruiseID)})
		}
	}

	ops := make([]dto.Operation, 0, len(deletes)+len(updates)+len(creates))
	ops = append(ops, deletes...)
	ops = append(ops, updates...)

	return append(ops, creates...)
}

func label(op dto.Operation) string {
	switch {
	case op.ID != "":
		return op.ID
	case op.TempID != "":
		return op.TempID
	default:
		return labelNewCabin
	}
}
