package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck melaporkan backend store dan jumlah produk katalog.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"store": gin.H{
			"driver":   ctrl.StoreDriver,
			"products": ctrl.Store.Count(),
		},
		"timestamp": time.Now().Unix(),
	})
}

// GetCharts mengembalikan seri penjualan dan inventaris untuk dashboard.
func (ctrl *Controller) GetCharts(c *gin.Context) {
	charts := ctrl.Store.ChartData(c.Request.Context())
	c.JSON(http.StatusOK, charts.Datasets())
}

// GetStats mengambil data statistik katalog.
func (ctrl *Controller) GetStats(c *gin.Context) {
	stats := ctrl.Store.Stats(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
