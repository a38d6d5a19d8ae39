package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"euchre-game/internal/database"
	"euchre-game/internal/game"
	"euchre-game/internal/protocol"
	"euchre-game/internal/shared"

	"github.com/google/uuid"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

const tableCodeLength = 5 // Length of the unique table code

// aiMoveDelay paces AI turns so humans can follow the play. The engine
// itself does not depend on it.
const aiMoveDelay = 1500 * time.Millisecond

// Table groups the clients gathered around one game session. Seats
// without a client are played by the AI.
type Table struct {
	Code    string
	Session *game.Session
	clients map[*Client]bool
	seats   map[shared.Seat]*Client
}

// Hub manages active WebSocket connections and game tables.
type Hub struct {
	clients        map[*Client]bool
	tables         map[string]*Table
	clientToTable  map[*Client]string
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	clientMu       sync.RWMutex
	tableMu        sync.RWMutex
	rng            *rand.Rand
	db             *database.Service
}

// NewHub creates a new Hub instance.
func NewHub(db *database.Service) *Hub {
	source := rand.NewSource(time.Now().UnixNano())
	rng := rand.New(source)

	return &Hub{
		clients:        make(map[*Client]bool),
		tables:         make(map[string]*Table),
		clientToTable:  make(map[*Client]string),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		rng:            rng,
		db:             db,
	}
}

// generateTableCode creates a unique alphanumeric table code.
func (h *Hub) generateTableCode() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for {
		var sb strings.Builder
		for i := 0; i < tableCodeLength; i++ {
			sb.WriteByte(letters[h.rng.Intn(len(letters))])
		}
		code := sb.String()

		h.tableMu.RLock()
		_, exists := h.tables[code]
		h.tableMu.RUnlock()

		if !exists {
			return code
		}
		log.Printf("Generated table code %s collided, retrying...", code)
	}
}

// newTable builds a table and its session. The session re-queries seat
// occupancy at every turn, so joins and disconnects take effect on the
// next move without touching engine state.
func (h *Hub) newTable(code string) *Table {
	table := &Table{
		Code:    code,
		clients: make(map[*Client]bool),
		seats:   make(map[shared.Seat]*Client),
	}

	table.Session = game.NewSession(game.Config{
		Rand:    rand.New(rand.NewSource(h.rng.Int63())),
		AIDelay: aiMoveDelay,
		IsHuman: func(seat shared.Seat) bool {
			h.tableMu.RLock()
			defer h.tableMu.RUnlock()
			t, ok := h.tables[code]
			return ok && t.seats[seat] != nil
		},
		OnState: func(snap game.Snapshot) {
			msg, err := protocol.NewMessage("game_state", protocol.GameStatePayload{State: snap})
			if err != nil {
				log.Printf("Table %s: error creating game_state message: %v", code, err)
				return
			}
			h.broadcastToTable(code, msg)
		},
		OnEvent: func(e game.Event) {
			msg, err := protocol.NewMessage("game_event", protocol.GameEventPayload{Event: e})
			if err != nil {
				log.Printf("Table %s: error creating game_event message: %v", code, err)
				return
			}
			h.broadcastToTable(code, msg)

			if e.Action == game.EventGameOver {
				h.recordResult(code, e)
			}
		},
	})

	return table
}

// recordResult persists a finished game to the results store.
func (h *Hub) recordResult(code string, e game.Event) {
	if h.db == nil {
		return
	}

	names := map[shared.Seat]string{}
	h.tableMu.RLock()
	if t, ok := h.tables[code]; ok {
		for seat, client := range t.seats {
			names[seat] = client.Name
		}
	}
	h.tableMu.RUnlock()

	nameOrCPU := func(seat shared.Seat) string {
		if name, ok := names[seat]; ok && name != "" {
			return name
		}
		return "cpu"
	}

	result := database.GameResult{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		South:       nameOrCPU(shared.South),
		West:        nameOrCPU(shared.West),
		North:       nameOrCPU(shared.North),
		East:        nameOrCPU(shared.East),
		Team1Score:  e.TeamScores[0],
		Team2Score:  e.TeamScores[1],
		WinningTeam: int(e.WinningTeam),
	}

	go func() {
		if err := h.db.Insert(result); err != nil {
			log.Printf("Table %s: failed to record game result: %v", code, err)
		}
	}()
}

// Run starts the Hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			client.ID = uuid.NewString() // Assign a unique ID upon registration
			log.Printf("Client %s (%s) connected", client.ID, client.conn.RemoteAddr())
			h.clientMu.Lock()
			h.clients[client] = true
			h.clientMu.Unlock()

			welcomeMsg, _ := protocol.NewMessage("welcome", protocol.WelcomePayload{ClientID: client.ID})
			h.sendMessageToClient(client.ID, welcomeMsg)

		case client := <-h.unregister:
			h.removeClient(client)

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

// removeClient drops a disconnected client, releasing its seat and
// tearing down its table when nobody is left.
func (h *Hub) removeClient(client *Client) {
	h.clientMu.Lock()
	code, inTable := h.clientToTable[client]
	if _, exists := h.clients[client]; !exists {
		h.clientMu.Unlock()
		return
	}
	delete(h.clients, client)
	delete(h.clientToTable, client)
	close(client.send)
	log.Printf("Client %s (%s) disconnected", client.ID, client.Name)
	h.clientMu.Unlock()

	if !inTable {
		return
	}

	var session *game.Session
	empty := false

	h.tableMu.Lock()
	table, ok := h.tables[code]
	if ok {
		delete(table.clients, client)
		if client.Position != "" && table.seats[client.Position] == client {
			delete(table.seats, client.Position)
		}
		session = table.Session
		if len(table.clients) == 0 {
			delete(h.tables, code)
			empty = true
		}
	}
	h.tableMu.Unlock()

	if !ok {
		return
	}

	if empty {
		log.Printf("Table %s empty, discarding session.", code)
		session.Stop()
		return
	}

	leaveMsg, _ := protocol.NewMessage("player_leave", protocol.PlayerLeavePayload{ClientID: client.ID, Name: client.Name})
	h.broadcastToTable(code, leaveMsg)
	h.broadcastPositions(code)
	h.broadcastPlayerList(code)

	// The freed seat falls to the AI; wake it in case the game was
	// waiting on this seat's move.
	session.Resume()
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case "create_table":
		h.handleCreateTable(client, msg)
	case "join_table":
		h.handleJoinTable(client, msg)
	case "take_seat":
		h.handleTakeSeat(client, msg)
	case "chat":
		h.handleChat(client, msg)
	case "game_action":
		h.handleGameAction(client, msg)
	case "ping":
		pongMsg, _ := protocol.NewMessage("pong", nil)
		client.send <- pongMsg
	default:
		log.Printf("Received unknown message type '%s' from client %s (%s)", msg.Type, client.ID, client.Name)
		h.sendErrorToClient(client, "Unknown message type.")
	}
}

// handleCreateTable handles a request to open a new table.
func (h *Hub) handleCreateTable(client *Client, msg protocol.Message) {
	h.clientMu.RLock()
	_, alreadyInTable := h.clientToTable[client]
	h.clientMu.RUnlock()
	if alreadyInTable {
		log.Printf("Client %s tried to create a table but is already at one.", client.ID)
		h.sendErrorToClient(client, "Already at a table.")
		return
	}

	var payload protocol.CreateTablePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("Error unmarshalling create_table payload from client %s: %v", client.ID, err)
		h.sendErrorToClient(client, "Invalid create_table message format.")
		return
	}
	if payload.Name == "" {
		h.sendErrorToClient(client, "Name cannot be empty.")
		return
	}

	seat := payload.Position
	if seat == "" {
		seat = shared.South
	}
	if !shared.IsValidSeat(seat) {
		h.sendErrorToClient(client, "Invalid seat.")
		return
	}

	code := h.generateTableCode()
	table := h.newTable(code)

	h.clientMu.Lock()
	client.Name = payload.Name
	client.Position = seat
	h.clientToTable[client] = code
	h.clientMu.Unlock()

	h.tableMu.Lock()
	table.clients[client] = true
	table.seats[seat] = client
	h.tables[code] = table
	h.tableMu.Unlock()

	log.Printf("Client %s (%s) opened table %s at seat %s", client.ID, client.Name, code, seat)

	createdMsg, _ := protocol.NewMessage("table_created", protocol.TableCreatedPayload{TableCode: code})
	h.sendMessageToClient(client.ID, createdMsg)

	h.broadcastPositions(code)
	h.broadcastPlayerList(code)
	h.sendSnapshot(client, table.Session)
}

// handleJoinTable handles a request to join an existing table.
func (h *Hub) handleJoinTable(client *Client, msg protocol.Message) {
	h.clientMu.RLock()
	_, alreadyInTable := h.clientToTable[client]
	h.clientMu.RUnlock()
	if alreadyInTable {
		h.sendJoinError(client, "Already at a table.")
		return
	}

	var payload protocol.JoinTablePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("Error unmarshalling join_table payload from client %s: %v", client.ID, err)
		h.sendJoinError(client, "Invalid join_table message format.")
		return
	}
	if payload.Name == "" {
		h.sendJoinError(client, "Name cannot be empty.")
		return
	}
	if payload.TableCode == "" {
		h.sendJoinError(client, "Table code cannot be empty.")
		return
	}
	code := strings.ToUpper(payload.TableCode)

	h.tableMu.Lock()
	table, exists := h.tables[code]
	if !exists {
		h.tableMu.Unlock()
		log.Printf("Client %s tried to join non-existent table %s", client.ID, code)
		h.sendJoinError(client, "Table code not found.")
		return
	}

	for existing := range table.clients {
		if existing.Name == payload.Name {
			h.tableMu.Unlock()
			h.sendJoinError(client, "Name already taken at this table.")
			return
		}
	}

	// Take the requested seat when it is free; otherwise join as a
	// spectator and pick a seat later.
	seat := payload.Position
	if seat != "" && (!shared.IsValidSeat(seat) || table.seats[seat] != nil) {
		seat = ""
	}

	client.Name = payload.Name
	client.Position = seat
	table.clients[client] = true
	if seat != "" {
		table.seats[seat] = client
	}
	session := table.Session
	h.tableMu.Unlock()

	h.clientMu.Lock()
	h.clientToTable[client] = code
	h.clientMu.Unlock()

	log.Printf("Client %s (%s) joined table %s (seat: %q)", client.ID, client.Name, code, seat)

	joinMsg, _ := protocol.NewMessage("player_join", protocol.PlayerJoinPayload{
		ClientID: client.ID,
		Name:     client.Name,
		Position: seat,
	})
	h.broadcastToTable(code, joinMsg)
	h.broadcastPositions(code)
	h.broadcastPlayerList(code)
	h.sendSnapshot(client, session)
}

// handleTakeSeat moves a client onto a free seat, releasing any seat it
// already held.
func (h *Hub) handleTakeSeat(client *Client, msg protocol.Message) {
	var payload protocol.TakeSeatPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.sendErrorToClient(client, "Invalid take_seat message format.")
		return
	}
	if !shared.IsValidSeat(payload.Position) {
		h.sendErrorToClient(client, "Invalid seat.")
		return
	}

	h.clientMu.RLock()
	code, inTable := h.clientToTable[client]
	h.clientMu.RUnlock()
	if !inTable {
		h.sendErrorToClient(client, "You are not at a table.")
		return
	}

	var session *game.Session

	h.tableMu.Lock()
	table, ok := h.tables[code]
	if !ok {
		h.tableMu.Unlock()
		h.sendErrorToClient(client, "Table not found.")
		return
	}
	if table.seats[payload.Position] != nil {
		h.tableMu.Unlock()
		h.sendErrorToClient(client, "Seat is taken.")
		return
	}
	if client.Position != "" && table.seats[client.Position] == client {
		delete(table.seats, client.Position)
	}
	client.Position = payload.Position
	table.seats[payload.Position] = client
	session = table.Session
	h.tableMu.Unlock()

	log.Printf("Client %s (%s) took seat %s at table %s", client.ID, client.Name, payload.Position, code)

	h.broadcastPositions(code)
	h.broadcastPlayerList(code)

	// A seat swap may have freed the seat the game is waiting on.
	session.Resume()
}

// handleChat relays a chat line to everyone at the sender's table.
func (h *Hub) handleChat(client *Client, msg protocol.Message) {
	var payload protocol.ChatPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Text == "" {
		return
	}

	h.clientMu.RLock()
	code, inTable := h.clientToTable[client]
	h.clientMu.RUnlock()
	if !inTable {
		return
	}

	chatMsg, _ := protocol.NewMessage("chat", protocol.ChatBroadcastPayload{
		Sender: client.Name,
		Text:   payload.Text,
	})
	h.broadcastToTable(code, chatMsg)
}

// handleGameAction forwards engine actions to the client's session.
// The session validates phase and turn; the hub only resolves the seat.
func (h *Hub) handleGameAction(client *Client, msg protocol.Message) {
	var payload protocol.GameActionPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.sendErrorToClient(client, "Invalid game_action message format.")
		return
	}

	h.clientMu.RLock()
	code, inTable := h.clientToTable[client]
	h.clientMu.RUnlock()
	if !inTable {
		h.sendErrorToClient(client, "You are not at a table.")
		return
	}

	h.tableMu.RLock()
	table, ok := h.tables[code]
	var session *game.Session
	if ok {
		session = table.Session
	}
	h.tableMu.RUnlock()
	if !ok {
		h.sendErrorToClient(client, "Table not found.")
		return
	}

	seat := client.Position
	if seat == "" {
		h.sendErrorToClient(client, "Take a seat first.")
		return
	}

	var err error
	switch payload.Action {
	case "deal":
		err = session.Deal()
	case "bid":
		err = session.Bid(seat, payload.Bid, payload.Suit)
	case "discard":
		err = session.Discard(seat, payload.CardIndex)
	case "play_card":
		err = session.PlayCard(seat, payload.CardIndex)
	case "new_game":
		err = session.NewGame()
	default:
		h.sendErrorToClient(client, "Unknown game action.")
		return
	}

	if err != nil {
		log.Printf("Table %s: rejected %s from %s (%s): %v", code, payload.Action, client.ID, seat, err)
		h.sendErrorToClient(client, err.Error())
	}
}

// sendSnapshot delivers the current game state to a single client.
func (h *Hub) sendSnapshot(client *Client, session *game.Session) {
	msg, err := protocol.NewMessage("game_state", protocol.GameStatePayload{State: session.Snapshot()})
	if err != nil {
		log.Printf("Error creating game_state message for client %s: %v", client.ID, err)
		return
	}
	h.sendMessageToClient(client.ID, msg)
}

// sendMessageToClient delivers a message to a client by ID, cleaning up
// clients whose send channel is blocked or closed.
func (h *Hub) sendMessageToClient(clientID string, message []byte) {
	h.clientMu.RLock()
	var targetClient *Client
	for client := range h.clients {
		if client.ID == clientID {
			targetClient = client
			break
		}
	}
	h.clientMu.RUnlock()

	if targetClient == nil {
		log.Printf("Could not find client %s to send message (already disconnected?).", clientID)
		return
	}

	select {
	case targetClient.send <- message:
	default:
		log.Printf("Failed to send message to client %s (channel full or closed), initiating cleanup.", clientID)
		go func() {
			h.clientMu.RLock()
			_, stillConnected := h.clients[targetClient]
			h.clientMu.RUnlock()
			if stillConnected {
				h.unregister <- targetClient
			}
		}()
	}
}

// broadcastToTable sends a message to every client at a table.
func (h *Hub) broadcastToTable(code string, message []byte) {
	h.tableMu.RLock()
	table, exists := h.tables[code]
	if !exists {
		h.tableMu.RUnlock()
		return
	}
	clientsToSend := make([]*Client, 0, len(table.clients))
	for client := range table.clients {
		clientsToSend = append(clientsToSend, client)
	}
	h.tableMu.RUnlock()

	for _, client := range clientsToSend {
		h.sendMessageToClient(client.ID, message)
	}
}

// broadcastPositions sends the seat-occupancy map for a table.
func (h *Hub) broadcastPositions(code string) {
	positions := map[shared.Seat]bool{
		shared.South: false,
		shared.West:  false,
		shared.North: false,
		shared.East:  false,
	}

	h.tableMu.RLock()
	if table, exists := h.tables[code]; exists {
		for seat, client := range table.seats {
			positions[seat] = client != nil
		}
	}
	h.tableMu.RUnlock()

	msg, err := protocol.NewMessage("position_update", protocol.PositionUpdatePayload{Positions: positions})
	if err != nil {
		log.Printf("Error creating position_update message for table %s: %v", code, err)
		return
	}
	h.broadcastToTable(code, msg)
}

// broadcastPlayerList sends the current list of clients at a table.
func (h *Hub) broadcastPlayerList(code string) {
	h.tableMu.RLock()
	table, exists := h.tables[code]
	var infos []protocol.PlayerInfo
	if exists {
		infos = make([]protocol.PlayerInfo, 0, len(table.clients))
		for client := range table.clients {
			infos = append(infos, protocol.PlayerInfo{
				ID:       client.ID,
				Name:     client.Name,
				Position: client.Position,
			})
		}
	}
	h.tableMu.RUnlock()
	if !exists {
		return
	}

	msg, err := protocol.NewMessage("player_list", protocol.PlayerListPayload{Players: infos})
	if err != nil {
		log.Printf("Error creating player_list message for table %s: %v", code, err)
		return
	}
	h.broadcastToTable(code, msg)
}

// sendErrorToClient sends a generic error message to a specific client.
func (h *Hub) sendErrorToClient(client *Client, errorMsg string) {
	payload := protocol.ErrorPayload{Message: errorMsg}
	msgBytes, err := protocol.NewMessage("error", payload)
	if err != nil {
		log.Printf("Error creating error message for client %s: %v", client.ID, err)
		return
	}
	h.sendMessageToClient(client.ID, msgBytes)
}

// sendJoinError sends a specific join error message to a client.
func (h *Hub) sendJoinError(client *Client, errorMsg string) {
	payload := protocol.JoinErrorPayload{Message: errorMsg}
	msgBytes, err := protocol.NewMessage("join_error", payload)
	if err != nil {
		log.Printf("Error creating join_error message for client %s: %v", client.ID, err)
		return
	}
	h.sendMessageToClient(client.ID, msgBytes)
}
