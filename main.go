package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"strconv"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"Tiletown/internal/lobby"
	"Tiletown/internal/pathgraph"
	"Tiletown/internal/sandbox"
	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

type GameScreen int

const (
	MainMenu GameScreen = iota
	ServerChooser
	InGame
)

var errOnlyHostLoads = errors.New("only the host can load a save")

var (
	gridRows = flag.Int("rows", GRID_ROWS, "grid rows")
	gridCols = flag.Int("cols", GRID_COLS, "grid columns")
	savePath = flag.String("save", SAVE_FILE, "save file for F5/F9")
	hostPort = flag.Int("port", lobby.DefaultPort, "port to host on")
)

var (
	currentScreen = MainMenu
	quit          = false
	status        = "Not connected yet!"
	sendTimer     float32
	session       Session

	titleFont rl.Font
	textFont  rl.Font

	camera              GameCamera
	tileTextures        TileTextures
	buildingTextures    BuildingTextures
	currentBuildMode    = TileMode
	currentTileKind     = tile.Road
	currentBuildingKind = world.RedHouse
	showGrid            = true
	showPathGraph       = false
)

var nameBox = NewCustomTextBox(200, 160, 250, 30, 15)
var ipBox = NewCustomTextBox(200, 200, 250, 30, 20)
var portBox = NewCustomTextBox(200, 240, 250, 30, 6)

func main() {
	flag.Parse()

	nameBox.Text = "Player"
	ipBox.Text = "127.0.0.1"
	portBox.Text = strconv.Itoa(*hostPort)

	rl.InitWindow(1024, 768, "Tiletown")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	titleFont = rl.LoadFontEx("fonts/Unageo-Medium.ttf", 72, nil)
	textFont = rl.LoadFontEx("fonts/Unageo-Medium.ttf", 24, nil)
	tileTextures.Load(RESOURCES_DIR)
	buildingTextures.Load(RESOURCES_DIR)

	log.Println("[Main] Application starting.")

	defer func() {
		if session != nil {
			session.Close()
		}
		tileTextures.Unload()
		buildingTextures.Unload()
		rl.UnloadFont(titleFont)
		rl.UnloadFont(textFont)
		rl.CloseWindow()
	}()

	for !rl.WindowShouldClose() && !quit {
		delta := rl.GetFrameTime()
		update(delta)
		draw()
	}
}

func enterGame(s Session) {
	session = s
	camera = NewGameCamera(20, UI_HEIGHT+20)
	currentScreen = InGame
}

func leaveGame(reason string) {
	if session != nil {
		session.Close()
		session = nil
	}
	status = reason
	currentScreen = MainMenu
}

func hostGame() {
	port := *hostPort
	if p, err := strconv.Atoi(portBox.Text); err == nil {
		port = p
	}
	server := lobby.NewServer(*gridRows, *gridCols)
	if err := server.Start(net.JoinHostPort("", strconv.Itoa(port))); err != nil {
		log.Printf("[Main] Host failed: %v", err)
		status = "Failed to host server."
		return
	}
	client := lobby.NewClient()
	name := nameBox.Text
	if name == "" {
		name = "Host"
	}
	if err := client.Connect(net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), name); err != nil {
		log.Printf("[Main] Host connect failed: %v", err)
		server.Stop()
		status = "Failed to join own server."
		return
	}
	enterGame(&lobbySession{client: client, host: server, status: "Hosting game..."})
}

func joinGame() {
	port, err := strconv.Atoi(portBox.Text)
	if err != nil {
		log.Printf("[Main] Invalid port number: %v", err)
		status = "Invalid port!"
		return
	}
	client := lobby.NewClient()
	if err := client.Connect(net.JoinHostPort(ipBox.Text, strconv.Itoa(port)), nameBox.Text); err != nil {
		log.Printf("[Main] Join failed: %v", err)
		status = "Could not reach " + ipBox.Text
		return
	}
	enterGame(&lobbySession{client: client, status: "Joined " + ipBox.Text})
}

func update(delta float32) {
	switch currentScreen {
	case MainMenu:
	case ServerChooser:
		if rl.IsKeyPressed(rl.KeyEscape) {
			currentScreen = MainMenu
		}
		nameBox.Update()
		ipBox.Update()
		portBox.Update()
	case InGame:
		updateGame(delta)
	}
}

func updateGame(delta float32) {
	camera.Update(delta)
	mousePos := rl.GetMousePosition()

	if rl.IsKeyPressed(rl.KeyG) {
		showGrid = !showGrid
	}
	if rl.IsKeyPressed(rl.KeyP) {
		showPathGraph = !showPathGraph
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		if err := session.Save(*savePath); err != nil {
			log.Printf("[Main] Save failed: %v", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		if err := session.Load(*savePath); err != nil {
			log.Printf("[Main] Load failed: %v", err)
		}
	}

	if mousePos.Y > UI_HEIGHT && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		x, y := camera.cellAt(mousePos)
		switch currentBuildMode {
		case TileMode:
			// Painting: skip cells that already hold the chosen kind.
			var same bool
			session.View(func(w *world.World, _ *pathgraph.Graph, _ map[string]lobby.PlayerCursor) {
				same = w.InBounds(x, y) && w.Kind(x, y) == currentTileKind
			})
			if !same {
				session.PlaceTile(x, y, currentTileKind)
			}
		case BuildingMode:
			if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
				if currentBuildingKind == world.NoBuilding {
					session.RemoveBuilding(x, y)
				} else {
					session.PlaceBuilding(x, y, currentBuildingKind)
				}
			}
		}
	}

	sendTimer += delta
	if sendTimer >= 0.04 {
		sendTimer = 0
		g := camera.screenToGrid(mousePos)
		session.Cursor(g.X, g.Y)
	}

	if !session.Alive() {
		leaveGame("Disconnected from server")
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		leaveGame("Left the game.")
	}
}

func draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	switch currentScreen {
	case MainMenu:
		drawMainMenu()
	case ServerChooser:
		drawServerChooser()
	case InGame:
		drawGame()
	}
	rl.EndDrawing()
}

func drawMainMenu() {
	gui.SetFont(titleFont)
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 72)
	gui.Label(rl.NewRectangle(350, 200, 400, 80), "Tiletown")
	gui.SetFont(textFont)
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 24)

	if gui.Button(rl.NewRectangle(400, 300, 200, 40), "Sandbox") {
		enterGame(sandbox.New(*gridRows, *gridCols))
	}
	if gui.Button(rl.NewRectangle(400, 360, 200, 40), "Multiplayer") {
		currentScreen = ServerChooser
	}
	if gui.Button(rl.NewRectangle(400, 420, 200, 40), "Exit") {
		quit = true
	}
	gui.Label(rl.NewRectangle(400, 480, 400, 30), status)
}

func drawServerChooser() {
	gui.Label(rl.NewRectangle(200, 50, 400, 30), "Server Connection")
	if gui.Button(rl.NewRectangle(200, 80, 200, 30), "Host Game") {
		hostGame()
	}
	if gui.Button(rl.NewRectangle(200, 120, 200, 30), "Join Game") {
		joinGame()
	}
	gui.Label(rl.NewRectangle(50, 160, 140, 30), "Your Name:")
	gui.Label(rl.NewRectangle(50, 200, 140, 30), "Server IP:")
	gui.Label(rl.NewRectangle(50, 240, 140, 30), "Port:")
	gui.Label(rl.NewRectangle(200, 300, 400, 30), status)
	nameBox.Draw()
	ipBox.Draw()
	portBox.Draw()
}

func drawGame() {
	if session == nil {
		return
	}
	session.View(func(w *world.World, g *pathgraph.Graph, cursors map[string]lobby.PlayerCursor) {
		drawTiles(&camera, w, &tileTextures)
		drawGrid(&camera, w)
		drawBuildings(&camera, w, &buildingTextures)
		drawPathGraph(&camera, g)
		drawHover(&camera, w)
		drawCursors(&camera, cursors)
	})
	drawToolbar()
}

func drawToolbar() {
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), UI_HEIGHT, rl.RayWhite)
	rl.DrawLine(0, UI_HEIGHT, int32(rl.GetScreenWidth()), UI_HEIGHT, rl.Black)

	if gui.Button(rl.NewRectangle(10, 10, 80, 25), "Tiles") {
		currentBuildMode = TileMode
	}
	if gui.Button(rl.NewRectangle(100, 10, 100, 25), "Buildings") {
		currentBuildMode = BuildingMode
	}

	swatch := rl.NewRectangle(10, 72, 16, 16)
	switch currentBuildMode {
	case TileMode:
		for i, kind := range tilePalette {
			if gui.Button(rl.NewRectangle(float32(10+i*85), 40, 80, 25), getTileName(kind)) {
				currentTileKind = kind
			}
		}
		gui.Label(rl.NewRectangle(36, 70, 200, 20), "Tile: "+getTileName(currentTileKind))
		rl.DrawRectangleRec(swatch, getTileColor(currentTileKind))
	case BuildingMode:
		for i, kind := range buildingPalette {
			if gui.Button(rl.NewRectangle(float32(10+i*115), 40, 110, 25), getBuildingName(kind)) {
				currentBuildingKind = kind
			}
		}
		gui.Label(rl.NewRectangle(36, 70, 200, 20), "Building: "+getBuildingName(currentBuildingKind))
		rl.DrawRectangleRec(swatch, getBuildingColor(currentBuildingKind))
	}
	rl.DrawRectangleLinesEx(swatch, 2, rl.Black)

	gui.Label(rl.NewRectangle(float32(rl.GetScreenWidth()-700), 95, 690, 20),
		"WASD / Arrows: Move | Wheel: Zoom | G: Grid | P: Paths | F5/F9: Save/Load | ESC: Menu")
	gui.Label(rl.NewRectangle(float32(rl.GetScreenWidth()-120), 10, 100, 20), fmt.Sprintf("Zoom: %.1fx", camera.Zoom))
	gui.Label(rl.NewRectangle(10, 95, 400, 20), session.Status())
}
