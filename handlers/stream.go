package handlers

import (
	"net/http"
	"time"

	"handyhub/services/reveal"
	"handyhub/services/timer"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StreamMessage is the envelope of every websocket frame.
type StreamMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// RevealedItem is one element of a staggered list.
type RevealedItem struct {
	Index int `json:"index"`
	Item  any `json:"item"`
}

// watchClose drains the read side and reports when the peer goes away.
func watchClose(conn *websocket.Conn) <-chan struct{} {
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return gone
}

func closeStream(conn *websocket.Conn, code int) {
	msg := websocket.FormatCloseMessage(code, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}

// RevealHandler streams lists one item at a time.
type RevealHandler struct {
	Clock timer.Clock
	Delay time.Duration
}

func NewRevealHandler(clock timer.Clock, delay time.Duration) *RevealHandler {
	if clock == nil {
		clock = timer.Real{}
	}
	return &RevealHandler{Clock: clock, Delay: delay}
}

// stream upgrades the request and reveals items on the handler's schedule.
// Closing the connection cancels the reveals still pending.
func (h *RevealHandler) stream(c *gin.Context, header StreamMessage, items []any) {
	logger := getLogger(c)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Reveal stream: upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(header); err != nil {
		return
	}

	revealed := make(chan int, len(items))
	r := reveal.Start(h.Clock, len(items), h.Delay, func(i int) { revealed <- i })
	defer r.Cancel()
	gone := watchClose(conn)

	for sent := 0; sent < len(items); sent++ {
		select {
		case <-gone:
			logger.Debug("Reveal stream: client left", zap.Int("sent", sent), zap.Int("total", len(items)))
			return
		case i := <-revealed:
			if err := conn.WriteJSON(StreamMessage{Event: "reveal", Data: RevealedItem{Index: i, Item: items[i]}}); err != nil {
				return
			}
		}
	}
	if err := conn.WriteJSON(StreamMessage{Event: "done", Data: gin.H{"count": len(items)}}); err != nil {
		return
	}
	closeStream(conn, websocket.CloseNormalClosure)
}
