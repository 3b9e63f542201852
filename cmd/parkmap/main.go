package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"parkmap/internal/server"
	"parkmap/internal/service"
)

// Options defines all CLI flags and env vars for the parkmap server.
// Flags: --host, --port, --data-dir, --web-dir, --segments, --points
// Env vars: SERVICE_HOST, SERVICE_PORT, SERVICE_DATA_DIR, ...
type Options struct {
	Host     string `doc:"Host to bind to" default:"0.0.0.0"`
	Port     int    `doc:"Port to listen on" short:"p" default:"8094"`
	DataDir  string `doc:"Directory holding the GeoJSON datasets" default:".data"`
	WebDir   string `doc:"Path to web/ directory" default:"web"`
	Segments string `doc:"Segments dataset file name" default:"segments.geojson"`
	Points   string `doc:"Points dataset file name" default:"points.geojson"`
}

func newServer(opts *Options) *server.Server {
	return server.New(server.Config{
		Host:         opts.Host,
		Port:         fmt.Sprintf("%d", opts.Port),
		DataDir:      opts.DataDir,
		WebDir:       opts.WebDir,
		SegmentsFile: opts.Segments,
		PointsFile:   opts.Points,
	})
}

func main() {
	// A local .env can override the SERVICE_* env vars during dev.
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, opts *Options) {
		srv := newServer(opts)

		hooks.OnStart(func() {
			addr := fmt.Sprintf("%s:%d", opts.Host, opts.Port)
			displayHost := opts.Host
			if displayHost == "0.0.0.0" {
				displayHost = "localhost"
			}
			baseURL := fmt.Sprintf("http://%s:%d", displayHost, opts.Port)

			fmt.Println()
			fmt.Printf("parkmap server starting...\n")
			fmt.Printf("  Server:  %s\n", baseURL)
			fmt.Printf("  Data:    %s\n", opts.DataDir)
			fmt.Println()
			fmt.Printf("  Viewer:  %s/viewer\n", baseURL)
			fmt.Printf("  Docs:    %s/docs\n", baseURL)
			fmt.Printf("  OpenAPI: %s/openapi.json\n", baseURL)
			fmt.Println()

			if err := http.ListenAndServe(addr, srv); err != nil {
				log.Fatalf("Server error: %v", err)
			}
		})
	})

	cli.Root().Use = "parkmap"
	cli.Root().Short = "Parking-zone map server"
	cli.Root().Version = "1.0.0"

	// spec subcommand: export OpenAPI spec
	specCmd := &cobra.Command{
		Use:   "spec",
		Short: "Export OpenAPI spec (JSON by default, --yaml for YAML)",
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, opts *Options) {
			srv := newServer(opts)
			spec := srv.OpenAPI()

			useYAML, _ := cmd.Flags().GetBool("yaml")

			var output []byte
			var err error
			if useYAML {
				output, err = yaml.Marshal(spec)
			} else {
				output, err = json.MarshalIndent(spec, "", "  ")
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error marshaling spec: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(output))
		}),
	}
	specCmd.Flags().BoolP("yaml", "y", false, "Output as YAML instead of JSON")
	cli.Root().AddCommand(specCmd)

	// categories subcommand: list zones with display names and colors
	catCmd := &cobra.Command{
		Use:   "categories",
		Short: "List parking zones with display names and assigned colors",
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, opts *Options) {
			view := service.NewViewService(opts.DataDir, opts.Segments, opts.Points)
			if err := view.Err(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			for _, c := range view.Categories() {
				fmt.Printf("%-32s %-32s %s\n", c.Name, c.Display, c.Color)
			}
		}),
	}
	cli.Root().AddCommand(catCmd)

	cli.Run()
}
