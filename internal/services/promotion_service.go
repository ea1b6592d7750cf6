package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fame_list/internal/avatar"
	"fame_list/internal/db/models"
	"fame_list/internal/db/repositories"
	"fame_list/internal/snapshot"
	tgbot "fame_list/internal/tg_bot"

	"go.uber.org/zap"
)

var (
	ErrApplicationNotApproved = errors.New("application not found or not approved")
	ErrSnapshotFailed         = errors.New("member added but snapshot was not regenerated")
	ErrAvatarFailed           = errors.New("failed to save avatar")
)

type promotionService struct {
	store          repositories.Store
	avatars        avatar.Materializer
	snapshots      snapshot.Generator
	announcer      tgbot.Announcer
	systemUsername string
	now            func() time.Time
	logger         *zap.SugaredLogger
}

// PromotionService turns an approved application into a roster member.
type PromotionService interface {
	Promote(ctx context.Context, applicationID int) (*models.Member, error)
}

type PromotionOption func(*promotionService)

func WithClock(now func() time.Time) PromotionOption {
	return func(s *promotionService) {
		s.now = now
	}
}

func WithAnnouncer(announcer tgbot.Announcer) PromotionOption {
	return func(s *promotionService) {
		s.announcer = announcer
	}
}

func NewPromotionService(
	store repositories.Store,
	avatars avatar.Materializer,
	snapshots snapshot.Generator,
	systemUsername string,
	logger *zap.SugaredLogger,
	options ...PromotionOption,
) PromotionService {
	s := &promotionService{
		store:          store,
		avatars:        avatars,
		snapshots:      snapshots,
		announcer:      tgbot.NewNopAnnouncer(),
		systemUsername: systemUsername,
		now:            time.Now,
		logger:         logger,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Promote inserts the member and stamps the application in one transaction,
// then rewrites the snapshot. When only the snapshot fails the committed
// member is returned along with an error wrapping ErrSnapshotFailed.
func (s *promotionService) Promote(ctx context.Context, applicationID int) (*models.Member, error) {
	var (
		member      *models.Member
		application *models.Application
	)

	err := s.store.RunInTransaction(ctx, func(r repositories.Repositories) error {
		var err error

		application, err = r.Applications.GetOneApproved(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("failed to get application: %w", err)
		}
		if application == nil {
			return ErrApplicationNotApproved
		}

		nextID, err := r.Members.NextID(ctx)
		if err != nil {
			return fmt.Errorf("failed to get next member id: %w", err)
		}

		now := s.now()
		member = newMember(application, nextID, now)

		member.Avatar, err = s.resolveAvatar(application, nextID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAvatarFailed, err)
		}

		if err := r.Members.Create(ctx, member); err != nil {
			return fmt.Errorf("failed to create member: %w", err)
		}

		processedBy, err := s.systemUserID(ctx, r.Users)
		if err != nil {
			return err
		}

		if err := r.Applications.MarkProcessed(ctx, application.ID, now, processedBy); err != nil {
			return fmt.Errorf("failed to mark application processed: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("member added", "memberID", member.ID, "applicationID", applicationID)

	if _, err := s.snapshots.Generate(ctx); err != nil {
		s.logger.Errorw("failed to generate snapshot", "error", err)
		return member, fmt.Errorf("%w: %w", ErrSnapshotFailed, err)
	}

	if err := s.announcer.Announce(member, application); err != nil {
		s.logger.Errorw("failed to announce member", "error", err, "memberID", member.ID)
	}

	return member, nil
}

func newMember(application *models.Application, id int, now time.Time) *models.Member {
	return &models.Member{
		ID:          id,
		Nickname:    application.Nickname,
		Username:    "@" + application.Telegram,
		Category:    application.Category,
		Role:        application.Category,
		Description: application.Description,
		Verified:    false,
		Pinned:      false,
		Scam:        false,
		Project:     "https://t.me/" + application.Telegram,
		Telegram:    application.Telegram,
		JoinDate:    joinDate(now),
		Activity:    models.DefaultMemberActivity,
		Details:     application.Description,
		Skills:      []string{models.DefaultMemberSkill},
	}
}

// joinDate keeps the local calendar day at UTC midnight since go-pg writes
// every time.Time in UTC.
func joinDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveAvatar returns the default reference when the application has no
// avatar and nil when a referenced source file does not exist.
func (s *promotionService) resolveAvatar(application *models.Application, memberID int) (*string, error) {
	if !application.HasAvatar() {
		reference := avatar.DefaultReference(memberID)
		return &reference, nil
	}

	reference, ok, err := s.avatars.Materialize(application.Avatar, memberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warnw("avatar source not found", "memberID", memberID)
		return nil, nil
	}

	return &reference, nil
}

// systemUserID returns nil when the reserved account does not exist.
func (s *promotionService) systemUserID(ctx context.Context, userRepository repositories.UserRepository) (*int, error) {
	user, err := userRepository.GetOneByUsername(ctx, s.systemUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to get system user: %w", err)
	}
	if user == nil {
		s.logger.Warnw("system user not found", "username", s.systemUsername)
		return nil, nil
	}

	return &user.ID, nil
}
