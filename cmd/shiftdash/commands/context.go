package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/ekaraca/shiftdash/internal/config"
	"github.com/ekaraca/shiftdash/pkg/clients/planclient"
	"github.com/ekaraca/shiftdash/pkg/core/services"
	"github.com/ekaraca/shiftdash/pkg/core/store"
	"github.com/ekaraca/shiftdash/pkg/session"
)

// AppContext holds the application dependencies passed to all commands
type AppContext struct {
	Cfg     *config.Config
	Client  *planclient.Client
	Session *session.Store
	Store   *store.Store
	Sync    *services.Controller
	Logger  *zap.Logger
	Ctx     context.Context
}
