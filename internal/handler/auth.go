package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parishtools/attendance-register/internal/config"
	"github.com/parishtools/attendance-register/internal/utils"
)

// AuthHandler implements the admin PIN gate.  The register has no user
// accounts: anyone can read, and a single shared PIN unlocks the
// privileged operations.  Unlock issues a short-lived ADMIN token;
// locking again is discarding the token client-side.
type AuthHandler struct {
	Cfg     config.Config
	PINHash string // bcrypt hash of the admin PIN, computed at startup
}

func NewAuthHandler(cfg config.Config, pinHash string) *AuthHandler {
	return &AuthHandler{Cfg: cfg, PINHash: pinHash}
}

type unlockReq struct {
	PIN string `json:"pin"`
}

type unlockResp struct {
	Token   string    `json:"token"`
	Role    string    `json:"role"`
	Expires time.Time `json:"expires"`
}

// Unlock verifies the PIN and returns an admin access token.
func (h *AuthHandler) Unlock(c echo.Context) error {
	var req unlockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	pin := strings.TrimSpace(req.PIN)
	if pin == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pin required"})
	}
	if !utils.VerifyPIN(h.PINHash, pin) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect PIN"})
	}

	access, err := utils.NewAdminToken(h.Cfg.JWTSecret, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, unlockResp{Token: access.Token, Role: utils.AdminRole, Expires: access.Exp})
}
