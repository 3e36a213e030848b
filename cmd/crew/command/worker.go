package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pixil98/go-crew/internal/game"
	"github.com/pixil98/go-crew/internal/listener"
	"github.com/pixil98/go-crew/internal/messaging"
	"github.com/pixil98/go-crew/internal/player"
	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	catalog, err := cfg.Storage.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	saves, err := cfg.Saves.BuildSaveStore()
	if err != nil {
		return nil, fmt.Errorf("opening save store: %w", err)
	}

	gameCfg := cfg.Game.gameConfig()
	start := func() (*game.Game, error) {
		return game.New(gameCfg, catalog)
	}

	widthOpt := player.WithWidth(cfg.Game.Width)
	opts := []player.PlayerOpt{widthOpt}
	if saves != nil {
		opts = append(opts, player.WithSaves(saves, cfg.Saves.slot()))
	}

	var bus *messaging.NatsServer
	if cfg.Nats.Enabled {
		bus, err = cfg.Nats.buildNatsServer()
		if err != nil {
			return nil, fmt.Errorf("creating nats server: %w", err)
		}
		opts = append(opts, player.WithFrameSink(messaging.NewFramePublisher(bus, cfg.Nats.FrameSubject)))
	}

	console := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	p := player.NewPlayer(console, start, catalog, opts...)

	workers := service.WorkerList{
		"player": &playerWorker{player: p},
	}
	if saves != nil {
		workers["saves"] = &savesWorker{saves: saves}
	}
	if bus != nil {
		workers["nats"] = &busWorker{server: bus, player: p, inputSubject: cfg.Nats.InputSubject}
	}

	if len(cfg.Listeners) > 0 {
		sm := listener.NewSessionManager(start, catalog, saves, widthOpt)
		for _, lc := range cfg.Listeners {
			l, err := lc.BuildListener(sm)
			if err != nil {
				return nil, fmt.Errorf("creating %s listener: %w", lc.Protocol, err)
			}
			workers[fmt.Sprintf("listener-%s-%d", lc.Protocol, lc.Port)] = l
		}
	}
	return workers, nil
}

// playerWorker plays on the terminal.
type playerWorker struct {
	player *player.Player
}

func (w *playerWorker) Start(ctx context.Context) error {
	return w.player.Play(ctx)
}

// savesWorker closes the save store once the app shuts down. Terminal and
// remote players share the store.
type savesWorker struct {
	saves storage.SaveStore
}

func (w *savesWorker) Start(ctx context.Context) error {
	<-ctx.Done()
	return w.saves.Close()
}

// busWorker runs the embedded nats server and feeds input published on it to
// the player.
type busWorker struct {
	server       *messaging.NatsServer
	player       *player.Player
	inputSubject string
}

func (b *busWorker) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() { errc <- b.server.Start(ctx) }()

	select {
	case <-b.server.Ready():
	case err := <-errc:
		return err
	}

	unsubscribe, err := messaging.SubscribeInput(b.server, b.inputSubject, b.player.Submit)
	if err != nil {
		return fmt.Errorf("subscribing to input: %w", err)
	}
	defer unsubscribe()

	return <-errc
}
