package debug

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/terrawalls/pkg/manager"
)

const shutdownTimeout = 3 * time.Second

// Server exposes pprof, the current session and the live event feed.
type Server struct {
	addr   string
	router *gin.Engine
}

func NewServer(addr string, m *manager.Manager, hub *Hub) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)

	router.GET("/session", func(c *gin.Context) {
		data, err := sonic.Marshal(m.Snapshot().View())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	})
	router.GET("/events", hub.HandleWS)

	return &Server{addr: addr, router: router}
}

func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logx.Infof("debug server listening on %s", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
