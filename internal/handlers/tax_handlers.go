package handlers

import (
	"net/http"

	"github.com/facturepro/facturepro-api/internal/interfaces"
	"github.com/gin-gonic/gin"
)

// TaxHandler exposes the jurisdiction tax profiles
type TaxHandler struct {
	common     *CommonServices
	taxService interfaces.TaxService
}

// NewTaxHandler creates a new tax handler
func NewTaxHandler(common *CommonServices, taxService interfaces.TaxService) *TaxHandler {
	return &TaxHandler{common: common, taxService: taxService}
}

// ListJurisdictions returns every known tax profile
// @Summary List tax jurisdictions
// @Tags tax
// @Produce json
// @Success 200 {array} business.TaxProfile
// @Router /api/v1/tax/jurisdictions [get]
func (h *TaxHandler) ListJurisdictions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   h.taxService.ListJurisdictions(),
	})
}

// GetJurisdiction resolves one jurisdiction code. Unknown codes resolve to a
// zero-tax profile flagged unsupported.
// @Summary Resolve a tax jurisdiction
// @Tags tax
// @Produce json
// @Param code path string true "Jurisdiction code"
// @Success 200 {object} business.TaxProfile
// @Router /api/v1/tax/jurisdictions/{code} [get]
func (h *TaxHandler) GetJurisdiction(c *gin.Context) {
	c.JSON(http.StatusOK, h.taxService.Resolve(c.Param("code")))
}
