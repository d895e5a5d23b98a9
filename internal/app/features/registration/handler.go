// internal/app/features/registration/handler.go
package registration

import (
	apierrors "github.com/dalemusser/solarfair/internal/app/features/errors"
	registrationstore "github.com/dalemusser/solarfair/internal/app/store/registrations"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for registrations. It holds the DB
// handle, the registration store, and the loggers provided by the bootstrap.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	ErrLog   *apierrors.ErrorLogger
	Regs     *registrationstore.Store
	PageSize int // default page size for /search; 0 falls back to listing.DefaultPageSize
}

func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, logger *zap.Logger, pageSize int) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		ErrLog:   errLog,
		Regs:     registrationstore.New(db),
		PageSize: pageSize,
	}
}
