package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/events"
	"go-ems/internal/form"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// EmployeesGenerationKey is bumped after every committed insert. Cached lists
	// are keyed by generation so a slow reader can never resurrect an older list.
	EmployeesGenerationKey = "employees:gen"
	EmployeesCacheTTL      = time.Hour

	listLoadTimeout = 10 * time.Second
)

func EmployeesCacheKey(gen int64) string {
	return fmt.Sprintf("employees:all:%d", gen)
}

type Service interface {
	Add(ctx context.Context, req AddEmployeeRequest) (Outcome, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		now:    time.Now,
		logger: l,
	}
}

// Add validates req, reports a duplicate when the id or email is taken and
// otherwise stores the employee together with its employee_added event.
func (s *service) Add(ctx context.Context, req AddEmployeeRequest) (Outcome, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("add employee requested",
		zap.String("request_id", rid),
		zap.String("emp_id", req.EmpID),
		zap.String("email", req.Email),
	)

	if fields := validateRequest(req, s.now()); len(fields) > 0 {
		s.logger.Warn("add employee validation failed",
			zap.String("request_id", rid),
			zap.Any("fields", fields),
		)
		return OutcomeAdded, employeeerrors.Invalid(fields)
	}

	byID, err := s.repo.FindByEmpID(ctx, req.EmpID)
	if err != nil {
		s.logger.Error("add employee lookup by id failed", zap.String("request_id", rid), zap.Error(err))
		return OutcomeAdded, err
	}
	byEmail, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("add employee lookup by email failed", zap.String("request_id", rid), zap.Error(err))
		return OutcomeAdded, err
	}
	if outcome, dup := duplicateOutcome(byID != nil, byEmail != nil); dup {
		s.logger.Info("add employee rejected as duplicate",
			zap.String("request_id", rid),
			zap.Stringer("outcome", outcome),
		)
		return outcome, nil
	}

	empl := &Employee{
		ID:            uuid.New(),
		EmpID:         req.EmpID,
		EmpName:       req.EmpName,
		Email:         req.Email,
		Phone:         req.Phone,
		Department:    req.Department,
		DateOfJoining: req.DateOfJoining,
		EmpRole:       req.EmpRole,
	}

	if err := s.insert(ctx, rid, empl); err != nil {
		mapped := mapRepositoryError(err)
		if outcome, dup := raceOutcome(mapped); dup {
			s.logger.Info("add employee lost insert race",
				zap.String("request_id", rid),
				zap.Stringer("outcome", outcome),
			)
			return outcome, nil
		}
		return OutcomeAdded, mapped
	}

	s.invalidateList(ctx)

	s.logger.Info("add employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("emp_id", empl.EmpID),
	)
	return OutcomeAdded, nil
}

func (s *service) insert(ctx context.Context, rid string, empl *Employee) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
		s.logger.Error("add employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.EmployeeAddedEvent{
			EventType:  events.EmployeeAddedEventType,
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			EmpID:      empl.EmpID,
			Email:      empl.Email,
			Department: empl.Department,
			OccurredAt: s.now().UTC(),
		})
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     events.EmployeeAddedEventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("add employee outbox persist failed",
				zap.String("request_id", rid),
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) invalidateList(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	// runs after commit, so a cancelled request must still advance the generation
	if err := s.rdb.Incr(context.WithoutCancel(ctx), EmployeesGenerationKey).Err(); err != nil {
		s.logger.Error("failed to advance employees cache generation",
			zap.Error(err),
			zap.String("key", EmployeesGenerationKey),
		)
	}
}

// listGeneration reports the current cache generation. ok is false when redis
// cannot be consulted, in which case the list is neither read from nor written to the cache.
func (s *service) listGeneration(ctx context.Context) (int64, bool) {
	if s.rdb == nil {
		return 0, false
	}
	val, err := s.rdb.Get(ctx, EmployeesGenerationKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		s.logger.Warn("employees cache generation read failed", zap.Error(err))
		return 0, false
	}
	gen, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		s.logger.Warn("employees cache generation unreadable", zap.String("value", val))
		return 0, false
	}
	return gen, true
}

// List returns every employee in insertion order, served from redis when cached.
func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	gen, cacheable := s.listGeneration(ctx)
	cacheKey := EmployeesCacheKey(gen)

	if cacheable {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil && resp != nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("employees cache read failed", zap.Error(err))
		}
	}

	flightKey := cacheKey
	if !cacheable {
		flightKey = "employees:uncached"
	}

	// the shared load outlives any single caller
	ch := s.sf.DoChan(flightKey, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), listLoadTimeout)
		defer cancel()

		emps, err := s.repo.FindAll(loadCtx)
		if err != nil {
			s.logger.Error("list employees failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if cacheable {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(loadCtx, cacheKey, jsonData, EmployeesCacheTTL).Err(); err != nil {
					s.logger.Warn("employees cache write failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]EmployeeResponse), nil
	}
}

// validateRequest applies the form's field rules, keyed by json field name.
func validateRequest(req AddEmployeeRequest, today time.Time) employeeerrors.FieldErrors {
	date := req.DateOfJoining
	errs := form.ValidateAll(form.Values{
		Name:  req.EmpName,
		ID:    req.EmpID,
		Email: req.Email,
		Phone: req.Phone,
		Dept:  req.Department,
		Date:  &date,
		Role:  req.EmpRole,
	}, today)
	if len(errs) == 0 {
		return nil
	}

	fields := make(employeeerrors.FieldErrors, len(errs))
	for f, msg := range errs {
		fields[jsonFieldName(f)] = msg
	}
	return fields
}

func jsonFieldName(f form.Field) string {
	switch f {
	case form.FieldName:
		return "empName"
	case form.FieldID:
		return "empId"
	case form.FieldDept:
		return "department"
	case form.FieldDate:
		return "dateOfJoining"
	case form.FieldRole:
		return "empRole"
	}
	return string(f)
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		EmpID:         e.EmpID,
		EmpName:       e.EmpName,
		Email:         e.Email,
		Phone:         e.Phone,
		Department:    e.Department,
		DateOfJoining: e.DateOfJoining,
		EmpRole:       e.EmpRole,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
