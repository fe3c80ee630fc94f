package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

// wsReadLimit bounds one inbound frame; UTF-8 text needs up to four bytes
// per rune.
var wsReadLimit = int64(constants.AIInputLimits.MaxQueryLength * 4)

const (
	wsPongWait     = 60 * time.Second
	wsPingInterval = 45 * time.Second
	wsWriteWait    = 10 * time.Second
	wsTurnTimeout  = 90 * time.Second
	wsPendingTurns = 4
)

type newChatRequest struct {
	Language string `json:"language"`
}

type chatMessageRequest struct {
	Message string `json:"message"`
}

type sessionView struct {
	Session *domain.ChatSession `json:"session"`
}

// socketFrame is what the websocket writes back for every inbound text frame.
type socketFrame struct {
	Type    string              `json:"type"`
	Session *domain.ChatSession `json:"session,omitempty"`
	Reply   *domain.ChatReply   `json:"reply,omitempty"`
	Error   *errorBody          `json:"error,omitempty"`
}

func (s *Server) handleNewChat(c *gin.Context) {
	if s.deps.Concierge == nil {
		unavailable(c, "concierge")
		return
	}
	var req newChatRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	lang := requestLanguage(c)
	if req.Language != "" {
		lang = domain.ParseLanguage(req.Language)
	}

	session := s.deps.Concierge.NewSession(lang)
	if err := s.deps.Concierge.SaveSession(c.Request.Context(), session); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, sessionView{Session: session})
}

func (s *Server) handleChatMessage(c *gin.Context) {
	if s.deps.Concierge == nil {
		unavailable(c, "concierge")
		return
	}
	var req chatMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	session, err := s.deps.Concierge.LoadSession(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	reply, err := s.chatTurn(ctx, session, req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, reply)
}

func (s *Server) chatTurn(ctx context.Context, session *domain.ChatSession, message string) (*domain.ChatReply, error) {
	reply, err := s.deps.Concierge.Send(ctx, session, message)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Concierge.SaveSession(ctx, session); err != nil {
		s.logger.Warn("Failed to persist chat session", zap.String("session", session.ID), zap.Error(err))
	}
	return reply, nil
}

// handleChatSocket serves one conversation per connection. The first frame
// written is the session snapshot; each inbound text frame is one turn.
func (s *Server) handleChatSocket(c *gin.Context) {
	if s.deps.Concierge == nil {
		unavailable(c, "concierge")
		return
	}

	ctx := c.Request.Context()
	var session *domain.ChatSession
	if id := c.Query("session"); id != "" {
		loaded, err := s.deps.Concierge.LoadSession(ctx, id)
		if err != nil {
			fail(c, err)
			return
		}
		session = loaded
	} else {
		session = s.deps.Concierge.NewSession(requestLanguage(c))
		if err := s.deps.Concierge.SaveSession(ctx, session); err != nil {
			fail(c, err)
			return
		}
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	s.serveChatSocket(conn, session)
}

// serveChatSocket keeps reading while a turn is in flight so that a
// disconnect cancels the pending model call.
func (s *Server) serveChatSocket(conn *websocket.Conn, session *domain.ChatSession) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	writes := make(chan socketFrame, 1)
	go s.socketWriter(ctx, conn, writes)

	// the turn goroutine mutates session, so the writer gets a copy
	snapshot := *session
	snapshot.History = append([]domain.ChatMessage(nil), session.History...)
	writes <- socketFrame{Type: "session", Session: &snapshot}

	turns := make(chan string, wsPendingTurns)
	go s.socketTurns(ctx, session, turns, writes)

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("WebSocket closed", zap.String("session", session.ID), zap.Error(err))
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		select {
		case turns <- string(payload):
		case <-ctx.Done():
			return
		}
	}
}

// socketTurns answers queued messages one at a time, in arrival order.
func (s *Server) socketTurns(ctx context.Context, session *domain.ChatSession, turns <-chan string, writes chan<- socketFrame) {
	for {
		var message string
		select {
		case message = <-turns:
		case <-ctx.Done():
			return
		}

		turnCtx, cancel := context.WithTimeout(ctx, wsTurnTimeout)
		reply, err := s.chatTurn(turnCtx, session, message)
		cancel()
		if ctx.Err() != nil {
			s.logger.Debug("Chat turn abandoned", zap.String("session", session.ID))
			return
		}

		frame := socketFrame{Type: "reply", Reply: reply}
		if err != nil {
			frame = socketFrame{Type: "error", Error: socketError(err)}
		}
		select {
		case writes <- frame:
		case <-ctx.Done():
			return
		}
	}
}

// socketWriter owns every write on conn, pings included.
func (s *Server) socketWriter(ctx context.Context, conn *websocket.Conn, frames <-chan socketFrame) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()
	for {
		select {
		case frame := <-frames:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(frame); err != nil {
				s.logger.Debug("WebSocket write failed", zap.Error(err))
				_ = conn.Close()
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				_ = conn.Close()
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func socketError(err error) *errorBody {
	body := &errorBody{Code: errors.CodeAppError, Message: "request failed"}
	if app, ok := errors.AppErrorOf(err); ok {
		body.Code = app.Code
		body.Message = app.Message
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		body.Message = "request timed out"
	}
	return body
}
