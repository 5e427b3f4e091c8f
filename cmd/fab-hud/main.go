package main

import (
	"log"
	"runtime"
	"time"

	"fab-hud/internal/catalog"
	"fab-hud/internal/config"
	"fab-hud/internal/editor"
	"fab-hud/internal/graphics/uidraw"
	"fab-hud/internal/hud"
	"fab-hud/internal/input"
	"fab-hud/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"golang.org/x/image/font/gofont/goregular"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	ui := uidraw.NewUI()
	if err := ui.Init(goregular.TTF); err != nil {
		log.Fatalf("ui init: %v", err)
	}
	closer.Bind(ui.Dispose)

	limits, err := config.LoadLimits("fab-hud.yaml")
	if err != nil {
		log.Fatalf("load limits: %v", err)
	}
	cats := catalog.Load("catalogs")

	session := editor.New(limits, cats, hostCallbacks())

	rawBuildings, summaries, roads := demoScene()
	session.SetBuildings(summaries, "")
	session.SetRoads(roads)

	im := input.NewInputManager()
	panel := hud.NewPanel(session, ui, im, hud.HostCallbacks{
		SelectBuilding: func(id string) {
			raw, ok := rawBuildings[id]
			if !ok {
				log.Printf("unknown building %q", id)
				return
			}
			report := session.SetSelectedBuilding(raw)
			session.SetBuildings(summaries, id)
			for _, d := range report {
				log.Printf("decode %s: %s defaulted (%s)", id, d.Field, d.Reason)
			}
		},
	})

	setupInputHandlers(window, im, panel)

	frames := 0
	lastReport := time.Now()
	for !window.ShouldClose() {
		profiling.ResetFrame()

		gl.ClearColor(0.05, 0.05, 0.06, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		func() {
			defer profiling.Track("hud.Render")()
			panel.Render(window)
		}()

		func() {
			defer profiling.Track("swap")()
			window.SwapBuffers()
		}()
		glfw.PollEvents()
		im.PostUpdate()

		frames++
		if time.Since(lastReport) >= time.Second {
			log.Printf("FPS: %d  %s", frames, profiling.TopN(3))
			frames = 0
			lastReport = time.Now()
		}
	}

	closer.Close()
}

func setupInputHandlers(window *glfw.Window, im *input.InputManager, panel *hud.Panel) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		// A focused text field eats editing keys before the action map.
		panel.HandleKey(key, action)
		if panel.FieldFocused() {
			return
		}
		im.HandleKeyEvent(key, action)
	})
	window.SetCharCallback(func(w *glfw.Window, r rune) {
		panel.HandleChar(r)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
}
