/*
Package main
File: main.go
Description: Server entry point. Loads the colony configuration, starts the
spectator WebSocket hub, and runs the turn heartbeat that drives the game.
*/

package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/everforgeworks/colony-defense/internal/api"
	"github.com/everforgeworks/colony-defense/internal/game"
)

func main() {
	// 1. Load the colony configuration from YAML
	path := os.Getenv("COLONY_CONFIG")
	if path == "" {
		path = "colony.yaml"
	}
	cfg, err := game.LoadConfig(path)
	if err != nil {
		log.Fatalf("Config Fail: %v", err)
	}

	// 2. Initialize and start the Real-Time WebSocket Hub
	hub := api.NewHub()
	go hub.Run()

	// 3. Start the first game. Every colony event is logged and relayed to spectators.
	sink := func(ev game.Event) {
		log.Printf("COLONY: turn %d %s %s %s %s", ev.Turn, ev.Kind, ev.Actor, ev.Location, ev.Detail)
		hub.Publish(api.MsgColonyEvent, ev)
	}
	session, err := game.NewSession(cfg.Colony, sink)
	if err != nil {
		log.Fatalf("Colony Fail: %v", err)
	}
	server := api.NewServer(session, hub)
	log.Printf("COLONY: Session %s ready", session.ID())

	// 4. THE TURN HEARTBEAT
	// Advances one turn per interval until the game concludes.
	if interval := cfg.Server.TurnIntervalSeconds; interval > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(interval) * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				if session.Concluded() {
					continue
				}
				outcome, snap := session.Step()
				server.Announce(outcome, snap)
			}
		}()
	} else {
		log.Println("COLONY: Manual stepping (POST /api/colony/step)")
	}

	// 5. Hot-reload logic: Listen for SIGHUP to start a fresh game from the file
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		for range sigChan {
			log.Println("SIGNAL: Reloading colony configuration...")
			next, err := game.LoadConfig(path)
			if err != nil {
				log.Printf("SIGNAL: Reload failed, keeping current game: %v", err)
				continue
			}
			if err := session.Reset(next.Colony); err != nil {
				log.Printf("SIGNAL: Reset failed: %v", err)
				continue
			}
			log.Printf("COLONY: Session %s ready", session.ID())
		}
	}()

	// 6. Start the Server
	log.Printf("COLONY DEFENSE Server live on %s", cfg.Server.Addr)
	log.Printf("Real-time Hub: Online")

	if err := http.ListenAndServe(cfg.Server.Addr, corsMiddleware(server.Routes())); err != nil {
		log.Fatal(err)
	}
}

// corsMiddleware lets browser clients on other origins reach the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
