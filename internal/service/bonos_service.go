package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/projection"
	"github.com/limbo/coachplan/internal/repository"
	"github.com/limbo/coachplan/pkg/entity"
	"golang.org/x/sync/errgroup"
)

type BonosService struct {
	repo     repository.BonosRepositoryI
	profiles repository.ProfilesRepositoryI
	loader   SnapshotLoaderI
	now      Clock
}

func NewBonosService(bonosRepo repository.BonosRepositoryI, profilesRepo repository.ProfilesRepositoryI, loader SnapshotLoaderI, clock Clock) *BonosService {
	if bonosRepo == nil || profilesRepo == nil || loader == nil {
		log.Fatal("on bonos service provided nil dependencies")
	}
	return &BonosService{
		repo:     bonosRepo,
		profiles: profilesRepo,
		loader:   loader,
		now:      orNow(clock),
	}
}

func (bs *BonosService) view(b entity.Bono) BonoView {
	return BonoView{
		Bono:   b,
		Status: projection.Remaining(b, bs.now()),
	}
}

func (bs *BonosService) List(ctx context.Context, sess entity.Session, clientID uuid.UUID) ([]BonoView, error) {
	snap, err := clientSnapshot(ctx, bs.loader, sess, clientID)
	if err != nil {
		return nil, err
	}
	views := make([]BonoView, 0, len(snap.Bonos))
	for _, b := range snap.Bonos {
		views = append(views, bs.view(b))
	}
	return views, nil
}

func (bs *BonosService) Create(ctx context.Context, sess entity.Session, clientID uuid.UUID, req *BonoRequest) (*BonoView, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	bono := entity.Bono{
		ClientID:      clientID,
		BonoType:      req.BonoType,
		SessionsTotal: req.SessionsTotal,
		SessionsUsed:  req.SessionsUsed,
		Notes:         req.Notes,
	}
	if err := setBonoDates(&bono, req.StartDate, req.ExpiryDate); err != nil {
		return nil, err
	}
	if err := bs.repo.Create(ctx, &bono); err != nil {
		return nil, repoError("bonos", err)
	}
	bs.loader.Invalidate(clientID)
	v := bs.view(bono)
	return &v, nil
}

func (bs *BonosService) Update(ctx context.Context, sess entity.Session, id uuid.UUID, req *UpdateBonoRequest) (*BonoView, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	bono, err := bs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("bonos", err)
	}
	if req.BonoType != nil {
		bono.BonoType = *req.BonoType
	}
	if req.SessionsTotal != nil {
		bono.SessionsTotal = *req.SessionsTotal
	}
	if req.SessionsUsed != nil {
		bono.SessionsUsed = *req.SessionsUsed
	}
	if req.Notes != nil {
		bono.Notes = *req.Notes
	}
	start, expiry := bono.StartDate.Format(projection.DateLayout), bono.ExpiryDate.Format(projection.DateLayout)
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.ExpiryDate != nil {
		expiry = *req.ExpiryDate
	}
	if err = setBonoDates(bono, start, expiry); err != nil {
		return nil, err
	}
	if err = bs.repo.Update(ctx, bono); err != nil {
		return nil, repoError("bonos", err)
	}
	bs.loader.Invalidate(bono.ClientID)
	v := bs.view(*bono)
	return &v, nil
}

func (bs *BonosService) Delete(ctx context.Context, sess entity.Session, id uuid.UUID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	bono, err := bs.repo.GetByID(ctx, id)
	if err != nil {
		return repoError("bonos", err)
	}
	if err = bs.repo.Delete(ctx, id); err != nil {
		return repoError("bonos", err)
	}
	bs.loader.Invalidate(bono.ClientID)
	return nil
}

func (bs *BonosService) RecordSession(ctx context.Context, sess entity.Session, id uuid.UUID) (*BonoView, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	bono, err := bs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("bonos", err)
	}
	if bs.view(*bono).Status.SessionsLeft <= 0 {
		return nil, errorvalues.ErrBonoExhausted
	}
	used, err := bs.repo.IncrementUsed(ctx, id)
	if err != nil {
		return nil, repoError("bonos", err)
	}
	bono.SessionsUsed = used
	bs.loader.Invalidate(bono.ClientID)
	v := bs.view(*bono)
	return &v, nil
}

func (bs *BonosService) Dashboard(ctx context.Context, sess entity.Session) (*Dashboard, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	today := projection.DateOnly(bs.now())
	var (
		clients int
		active  []entity.Bono
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clients, err = bs.profiles.CountClients(gctx)
		return err
	})
	g.Go(func() (err error) {
		active, err = bs.repo.ListActive(gctx, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, repoError("dashboard", err)
	}
	return &Dashboard{
		TotalClients: clients,
		ActiveBonos:  len(active),
		ExpiringSoon: projection.CountExpiringSoon(active, today),
	}, nil
}

func setBonoDates(bono *entity.Bono, start, expiry string) error {
	startDate, err := projection.ParseDate(start)
	if err != nil {
		return err
	}
	expiryDate, err := projection.ParseDate(expiry)
	if err != nil {
		return err
	}
	if expiryDate.Before(startDate) {
		return errors.Join(errorvalues.ErrValidation, errors.New("expiry date is before start date"))
	}
	bono.StartDate, bono.ExpiryDate = startDate, expiryDate
	return nil
}
