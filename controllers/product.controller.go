package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"techstore-admin/middleware"
	"techstore-admin/models"
	"techstore-admin/store"
)

// GetProducts menangani pengambilan satu halaman produk, bisa difilter dengan ?q=.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	items, summary := ctrl.Store.List(c.Request.Context(), c.GetInt(middleware.PageKey), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"summary": summary, "products": ToAPIProducts(items)})
}

// GetBestSelling mengembalikan produk terlaris dashboard dalam satu halaman.
func (ctrl *Controller) GetBestSelling(c *gin.Context) {
	items := ctrl.Store.BestSelling(c.Request.Context())
	summary := models.Summary{Total: len(items), TotalPages: 1, Page: 1, PageSize: len(items)}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "products": ToAPIProducts(items)})
}

// GetProduct menangani pengambilan detail satu produk berdasarkan ID.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	product, err := ctrl.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctrl.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToAPIProductDetail(product))
}

// CreateProduct menangani pembuatan produk baru. Harga harus lebih dari nol.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.Set || !req.Price.Value.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}

	product, err := ctrl.Store.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		ctrl.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ToAPIProduct(product))
}

// UpdateProduct menangani pembaruan field produk yang ada di body.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := ctrl.Store.Update(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		ctrl.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToAPIProduct(product))
}

// DeleteProduct menangani penghapusan produk.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	if err := ctrl.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		ctrl.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type imageUploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadImage mengunggah gambar base64 dan menyimpan URL-nya di produk.
func (ctrl *Controller) UploadImage(c *gin.Context) {
	if ctrl.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured"})
		return
	}

	var req imageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dataURI, err := CheckImage(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	if _, err := ctrl.Store.Get(ctx, id); err != nil {
		ctrl.storeError(c, err)
		return
	}

	url, err := ctrl.Uploader.Upload(ctx, id, dataURI)
	if err != nil {
		ctrl.Log.Error("image upload failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload image"})
		return
	}

	product, err := ctrl.Store.Update(ctx, id, models.ProductPatch{Image: &url})
	if err != nil {
		ctrl.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToAPIProduct(product))
}

func (ctrl *Controller) storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	ctrl.Log.Error("store operation failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
