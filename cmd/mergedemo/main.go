// Command mergedemo runs a scripted three-way scene merge against the
// in-memory engine and logs each step. It exists as a worked example of the
// merge session API; the engine itself has no CLI surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/paulo-o3h/GitMerge-for-Unity/internal/config"
	"github.com/paulo-o3h/GitMerge-for-Unity/internal/merge"
	"github.com/paulo-o3h/GitMerge-for-Unity/internal/scene"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	Abort     bool
	Verbose   bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("mergedemo", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory holding gitmerge.yml")
	fs.BoolVar(&flags.Abort, "abort", false, "abort the session instead of completing it")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := zerolog.InfoLevel
	if flags.Verbose || cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return demo(log, merge.Options{
		KeepWorldTransform: cfg.KeepWorld(),
		IndexPairing:       cfg.IndexPairing,
	})
}

// demo merges a small incoming hierarchy into a live one, forcing a parent
// to materialize out of order through the pending mechanism.
func demo(log zerolog.Logger, opts merge.Options) error {
	eng := scene.NewMemScene()

	// Live graph: a player under a level root.
	level := eng.NewContainer("Level", 1)
	player := eng.NewContainer("Player", 2)
	eng.AddComponent(player, "Transform", 3)
	eng.SetParent(player, level, true)

	// Incoming graph: the same level gained an enemy with a patrol child.
	theirLevel := eng.NewContainer("Level", 1)
	enemy := eng.NewContainer("Enemy", 10)
	eng.AddComponent(enemy, "Transform", 11)
	patrol := eng.NewContainer("PatrolPoint", 12)
	eng.SetParent(enemy, theirLevel, true)
	eng.SetParent(patrol, enemy, true)

	s := merge.NewSession(eng, eng, opts).WithLogger(log)
	s.Begin([]scene.Node{level}, []scene.Node{theirLevel})

	// Decision: keep our version of the level. Promoting it makes it the
	// counterpart for the incoming level, so copies of its children attach
	// under the live one.
	s.RegisterOurs(level)

	// The user accepts the enemy, but its decision has not applied yet;
	// declare it pending so dependents can force it.
	if err := s.AddPending(enemy, merge.ActionFunc(func() {
		dup := s.InstantiateCopy(enemy)
		if err := s.RecordCopy(enemy, dup); err != nil {
			log.Error().Err(err).Msg("record enemy copy")
		}
	})); err != nil {
		return err
	}

	// The patrol point's decision applies first and needs its parent.
	if err := s.EnsureExists(enemy); err != nil {
		return err
	}
	dup := s.InstantiateCopy(patrol)
	if err := s.RecordCopy(patrol, dup); err != nil {
		return err
	}

	if cp, ok := s.ResolveCounterpart(patrol); ok {
		log.Info().
			Str("name", eng.NameOf(cp)).
			Str("parent", eng.NameOf(eng.ParentOf(cp))).
			Msg("patrol point resolved into live graph")
	}

	s.End(true)
	return nil
}
