package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// flash-уведомления живут в cookie-сессии до первого рендера:
// хендлер ставит сообщение, делает redirect, следующая страница его
// показывает и забывает.

func flashSuccess(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, "success")
	_ = sess.Save()
}

func flashError(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, "error")
	_ = sess.Save()
}

func takeFlashes(c *gin.Context) (success []string, errs []string) {
	sess := sessions.Default(c)
	for _, f := range sess.Flashes("success") {
		if s, ok := f.(string); ok {
			success = append(success, s)
		}
	}
	for _, f := range sess.Flashes("error") {
		if s, ok := f.(string); ok {
			errs = append(errs, s)
		}
	}
	_ = sess.Save()
	return success, errs
}
