package usecase

import (
	"pos-backend/internal/data/repository"
	"pos-backend/internal/mail"
	"pos-backend/internal/notify"
	"pos-backend/pkg/token"
	"pos-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	Staff StaffService
}

func NewService(
	repo *repository.Repository,
	tokens *token.Service,
	sink notify.Sink,
	mailer mail.Sender,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:  NewAuthService(repo, tokens, sink, log),
		Staff: NewStaffService(repo, sink, mailer, config, log),
	}
}
