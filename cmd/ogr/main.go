// ogr loads a binary graph snapshot and answers routing and tour
// queries against it from the command line.
//
// Usage:
//
//	ogr route --snapshot city.ogr --from 1 --to 2 [--algo dijkstra|astar] [--profile car|pedestrian]
//	ogr tsp   --snapshot city.ogr --waypoints 1,2,3 [--tsp-algo ig|ign|ilsb] [--path-algo dijkstra|astar] [--profile car|pedestrian] [--closed]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oroutengine/ogr/config"
	"github.com/oroutengine/ogr/graph"
	"github.com/oroutengine/ogr/profile"
	"github.com/oroutengine/ogr/routing"
	"github.com/oroutengine/ogr/snapshot"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "route":
		err = runRoute(os.Args[2:])
	case "tsp":
		err = runTsp(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ogr: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ogr route --snapshot FILE --from ID --to ID [--algo dijkstra|astar] [--profile car|pedestrian]")
	fmt.Fprintln(os.Stderr, "       ogr tsp --snapshot FILE --waypoints ID,ID,... [--tsp-algo ig|ign|ilsb] [--path-algo dijkstra|astar] [--profile car|pedestrian] [--closed]")
}

func runRoute(args []string) error {
	cfg, err := config.Load(defaultConfigPath())
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("route", flag.ExitOnError)
	snapFile := fs.String("snapshot", "", "path to a binary graph snapshot file")
	from := fs.Int64("from", 0, "start node id")
	to := fs.Int64("to", 0, "end node id")
	algo := fs.String("algo", cfg.DefaultAlgorithm, "pathfinding algorithm: dijkstra or astar")
	profileName := fs.String("profile", cfg.DefaultProfile, "vehicle profile name (empty means unrestricted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *snapFile == "" {
		return fmt.Errorf("--snapshot is required")
	}

	g, err := loadSnapshot(*snapFile)
	if err != nil {
		return err
	}

	p, err := resolveProfile(cfg, *profileName)
	if err != nil {
		return err
	}

	facade := routing.NewPathfindingFacade(g)
	res, err := facade.FindPath(*from, *to, *algo, p)
	if err != nil {
		return err
	}

	fmt.Printf("algorithm:      %s\n", res.Algorithm)
	fmt.Printf("nodes explored: %d\n", res.NodesExplored)
	fmt.Printf("elapsed:        %s\n", res.Elapsed)
	fmt.Printf("total distance: %.1fm\n", float64(res.TotalDistance))
	fmt.Printf("path:           %s\n", joinInt64s(res.NodeIDs))

	return nil
}

func runTsp(args []string) error {
	cfg, err := config.Load(defaultConfigPath())
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("tsp", flag.ExitOnError)
	snapFile := fs.String("snapshot", "", "path to a binary graph snapshot file")
	waypointsRaw := fs.String("waypoints", "", "comma-separated list of node ids, first is the tour start")
	tspAlgo := fs.String("tsp-algo", cfg.DefaultTspAlgorithm, "TSP solver: ig, ign, or ilsb")
	pathAlgo := fs.String("path-algo", cfg.DefaultAlgorithm, "pathfinding algorithm used to build the distance matrix")
	profileName := fs.String("profile", cfg.DefaultProfile, "vehicle profile name (empty means unrestricted)")
	closed := fs.Bool("closed", false, "return to the start waypoint after visiting all others")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *snapFile == "" {
		return fmt.Errorf("--snapshot is required")
	}

	waypoints, err := parseWaypoints(*waypointsRaw)
	if err != nil {
		return err
	}

	g, err := loadSnapshot(*snapFile)
	if err != nil {
		return err
	}

	p, err := resolveProfile(cfg, *profileName)
	if err != nil {
		return err
	}

	facade := routing.NewTspFacade(g)
	res, err := facade.Solve(waypoints, *tspAlgo, *pathAlgo, p, *closed)
	if err != nil {
		return err
	}

	fmt.Printf("algorithm:       %s\n", res.Algorithm)
	fmt.Printf("precompute time: %s\n", res.PrecomputeTime)
	fmt.Printf("solve time:      %s\n", res.SolveTime)
	fmt.Printf("total distance:  %.1fm\n", float64(res.TotalDistance))
	fmt.Printf("tour (waypoint indices): %s\n", joinInts(res.TourIndices))

	return nil
}

func loadSnapshot(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	g, err := snapshot.NewReader(f).Decode()
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	return g, nil
}

func defaultConfigPath() string {
	if path := os.Getenv("OGR_CONFIG"); path != "" {
		return path
	}

	return "ogr.yaml"
}

func resolveProfile(cfg config.Config, name string) (*profile.Profile, error) {
	if name == "" {
		return profile.NoRestrictions(), nil
	}

	if p, ok := cfg.ProfileByName(name); ok {
		return p, nil
	}

	return profile.ByName(name)
}

func parseWaypoints(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid waypoint id %q: %w", part, err)
		}
		ids = append(ids, id)
	}

	if len(ids) < 2 {
		return nil, fmt.Errorf("--waypoints requires at least 2 ids")
	}

	return ids, nil
}

func joinInt64s(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, " -> ")
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " -> ")
}
