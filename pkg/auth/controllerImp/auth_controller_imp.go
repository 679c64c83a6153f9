package controllerImp

import (
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"

	"rotopt/pkg/auth/controller"
)

const (
	uidCookie  = "FARM_UID"
	defaultUID = "U_DEV_DEFAULT"
	cookieTTL  = 30 * 24 * time.Hour
)

// Farm UIDs are opaque identifiers; bound the charset so a crafted uid cannot
// smuggle cookie metadata.
var uidPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = defaultUID
	}
	if !uidPattern.MatchString(uid) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid uid"})
	}
	c.SetCookie(&http.Cookie{
		Name:     uidCookie,
		Value:    uid,
		Path:     "/",
		MaxAge:   int(cookieTTL.Seconds()),
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, map[string]any{"uid": uid, "cookie": uidCookie})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]any{
		"uid":           uid,
		"authenticated": uid != "",
	})
}
