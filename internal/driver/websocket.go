package driver

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vmauery/smrtclcltr-sub000/internal/calculator"
	"github.com/vmauery/smrtclcltr-sub000/internal/functions"
	"github.com/vmauery/smrtclcltr-sub000/internal/registry"
)

// wsUpgrader accepts connections from any origin: the core has no notion of
// a same-origin policy, and the collaborator it serves is a plain
// line-oriented client, not a browser page.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSConn is the LineIO collaborator over one websocket
// connection: each text frame received is one input line, and Out/Err
// write a text frame back per rendered line.
type WSConn struct {
	conn        *websocket.Conn
	interactive bool
}

// NewWSConn wraps an already-upgraded websocket connection as a LineIO.
func NewWSConn(conn *websocket.Conn) *WSConn {
	return &WSConn{conn: conn, interactive: true}
}

func (w *WSConn) ReadLine() (string, bool) {
	_, data, err := w.conn.ReadMessage()
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (w *WSConn) SetInteractive(v bool) { w.interactive = v }

func (w *WSConn) Size() (rows, cols int) { return 24, 80 }

func (w *WSConn) Out(format string, args ...interface{}) {
	w.conn.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf(format, args...)))
}

func (w *WSConn) Err(format string, args ...interface{}) {
	w.conn.WriteMessage(websocket.TextMessage, []byte("error: "+fmt.Sprintf(format, args...)))
}

var _ LineIO = (*WSConn)(nil)

// ServeWS is an alternate front-end to the driver loop: every
// websocket connection gets its own fresh Calculator/registry, so
// concurrent sessions never share a stack, and runs the same
// snapshot/parse/execute/render cycle a terminal REPL runs, one Driver
// goroutine per connection.
func ServeWS(addr string) error {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := wsUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("smrtclcltr: websocket upgrade failed: %v", err)
			return
		}
		go serveConn(conn)
	})
	return http.ListenAndServe(addr, nil)
}

func serveConn(conn *websocket.Conn) {
	defer conn.Close()

	reg := registry.New()
	functions.Register(reg)
	calc := calculator.New(reg)
	calc.Config.Interactive = true

	d := New(calc, NewWSConn(conn))
	d.Run()
}
