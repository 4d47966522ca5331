package controllers

import (
	"go.uber.org/zap"

	"techstore-admin/auth"
	"techstore-admin/store"
)

// Controller menampung dependensi yang digunakan oleh semua handler.
type Controller struct {
	Store       *store.Store
	StoreDriver string
	Auth        *auth.Authenticator
	// Uploader bernilai nil jika hosting gambar tidak dikonfigurasi.
	Uploader ImageUploader
	Log      *zap.Logger
}
