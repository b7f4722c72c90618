package auth

import (
	"net/http"

	"github.com/TribeTek-pvt-ltd/grazie-store-backend/models"
	"github.com/gin-gonic/gin"
)

// AdminLogout godoc
// @Summary Admin logout
// @Description Clears the session cookie. The token itself stays valid until expiry; there is no server-side revocation list.
// @Tags CMS - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/auth/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
