package handler

import (
	"github.com/sueun-dev/university-church-in-maryland/internal/app/livechat"
	"github.com/sueun-dev/university-church-in-maryland/internal/app/storage"
	"github.com/sueun-dev/university-church-in-maryland/internal/app/store"
	"github.com/sueun-dev/university-church-in-maryland/internal/configs"
)

// AppDeps bundles the collaborators every handler closes over.
type AppDeps struct {
	Registry *livechat.Registry
	Config   *configs.AppConfig
	Storage  storage.StorageService
	Store    *store.Store
}
