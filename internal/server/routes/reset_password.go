package routes

import (
	"errors"
	"net/http"
	"time"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/emerginginv/traceaid/internal/db"
	"github.com/emerginginv/traceaid/internal/server/middleware"
	"github.com/emerginginv/traceaid/internal/server/util"
)

const resetFormHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Reset Password</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
  <h1>Reset your password</h1>
  <form method="POST" id="reset-form">
    <input type="hidden" name="token" id="token">
    <label for="password">New password</label>
    <input type="password" name="password" id="password" minlength="8" required>
    <button type="submit">Reset password</button>
  </form>
  <script>
    document.getElementById('token').value =
      new URLSearchParams(window.location.search).get('token') || '';
    document.getElementById('reset-form').addEventListener('submit', async (e) => {
      e.preventDefault();
      const res = await fetch(window.location.pathname, {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({
          token: document.getElementById('token').value,
          password: document.getElementById('password').value,
        }),
      });
      const body = await res.json();
      alert(body.message || body.error);
    });
  </script>
</body>
</html>`

// GetResetPasswordFormHandler serves the standalone reset form. The page
// reads the token from the query string and posts back to the same path.
func GetResetPasswordFormHandler(c echo.Context) error {
	return c.HTML(http.StatusOK, resetFormHTML)
}

// ResetPasswordHandler consumes a single-use reset token and sets the new
// password. Expired or already-used tokens are rejected.
func ResetPasswordHandler(c echo.Context) error {
	type resetPasswordBody struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	type resetPasswordResponse struct {
		Success bool   `json:"success,omitempty"`
		Message string `json:"message,omitempty"`
		Error   string `json:"error,omitempty"`
	}

	data := new(resetPasswordBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, resetPasswordResponse{
			Error: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, resetPasswordResponse{
			Error: "Password must be at least 8 characters",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	tx, err := conn.Begin(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, resetPasswordResponse{
			Error: "Internal server error",
		})
	}
	defer tx.Rollback(ctx)
	queries := db.New(conn)
	qtx := queries.WithTx(tx)

	req, err := qtx.GetPasswordResetByToken(ctx, data.Token)
	if err != nil {
		return c.JSON(http.StatusBadRequest, resetPasswordResponse{
			Error: "Invalid or expired reset link",
		})
	}

	if err := util.ValidateResetRequest(req, time.Now()); err != nil {
		msg := "Invalid or expired reset link"
		if errors.Is(err, util.ErrResetConsumed) {
			msg = "This reset link has already been used"
		}
		return c.JSON(http.StatusBadRequest, resetPasswordResponse{
			Error: msg,
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, resetPasswordResponse{
			Error: "Internal server error",
		})
	}

	if err := qtx.UpdateProfilePassword(ctx, db.UpdateProfilePasswordParams{
		UserID:       req.UserID,
		PasswordHash: string(hash),
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, resetPasswordResponse{
			Error: "Internal server error",
		})
	}

	if err := qtx.ConsumePasswordReset(ctx, req.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, resetPasswordResponse{
			Error: "Internal server error",
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, resetPasswordResponse{
			Error: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, resetPasswordResponse{
		Success: true,
		Message: "Your password has been reset",
	})
}
