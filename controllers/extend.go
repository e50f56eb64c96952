// controllers/extend.go
package controllers

import (
	"net/http"

	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/config"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/services"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/utils"

	"github.com/gin-gonic/gin"
)

// ExtendSeries runs the series extension scheduler on demand. The nightly
// cron job runs the same code path; this endpoint exists for manual top-ups
// from the dashboard.
func ExtendSeries(c *gin.Context) {
	svc := services.NewExtensionService(services.NewBookingStore(config.DB))

	result, err := svc.Run()
	if err != nil {
		// Fail-fast: a partial run is reported as a failure so the next run
		// starts from consistent counts
		utils.RespondWithError(c, http.StatusInternalServerError, "Series extension failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
