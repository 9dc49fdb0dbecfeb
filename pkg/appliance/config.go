package appliance

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/edgetalks/traincam.go/pkg/coordlog"
	"github.com/edgetalks/traincam.go/pkg/display"
	"github.com/edgetalks/traincam.go/pkg/engine"
	"github.com/edgetalks/traincam.go/pkg/vision"
)

// Config defines the appliance configuration.
type Config struct {
	// sensor geometry
	Width    int
	Height   int
	Channels int

	// Classes is the human-facing output class count C. Class-select
	// commands are single digit characters, so C stays within 1..10.
	Classes int
	// NativeClasses is the engine's native label space N.
	NativeClasses int
	// Labels is an optional comma-separated list of class names.
	Labels string

	// MQTTBrokerURL enables the remote command channel and log
	// publishing when non-empty. e.g. mqtt://host:1883/traincam/
	MQTTBrokerURL string
	// ListenAddr enables the websocket log endpoint when non-empty.
	ListenAddr string

	// TrainRate is the fold-in rate of the built-in engine.
	TrainRate float64
}

var defaultConfig = Config{
	Width:         128,
	Height:        120,
	Channels:      3,
	Classes:       2,
	NativeClasses: engine.DefaultNativeClasses,
	TrainRate:     engine.DefaultRate,
}

func init() {
	if val := os.Getenv("TRAINCAM_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.IntVar(&defaultConfig.Width, "width", defaultConfig.Width, "Sensor frame width.")
	flag.IntVar(&defaultConfig.Height, "height", defaultConfig.Height, "Sensor frame height.")
	flag.IntVar(&defaultConfig.Classes, "classes", defaultConfig.Classes, "Output class count (1-10).")
	flag.StringVar(&defaultConfig.Labels, "labels", defaultConfig.Labels, "Comma-separated class labels.")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL, empty to disable.")
	flag.StringVar(&defaultConfig.ListenAddr, "listen", defaultConfig.ListenAddr, "Websocket log listen address, empty to disable.")
	flag.Float64Var(&defaultConfig.TrainRate, "train-rate", defaultConfig.TrainRate, "Training fold-in rate of the built-in engine.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Channels <= 0 {
		return fmt.Errorf("invalid sensor geometry %dx%dx%d", c.Width, c.Height, c.Channels)
	}
	if c.Classes < 1 || c.Classes > 10 {
		return fmt.Errorf("classes must be within 1..10, got %d", c.Classes)
	}
	return nil
}

// LabelNames resolves the human-facing class labels, one per class.
func (c *Config) LabelNames() []string {
	names := make([]string, c.Classes)
	configured := strings.Split(c.Labels, ",")
	for i := range names {
		if c.Labels != "" && i < len(configured) && configured[i] != "" {
			names[i] = configured[i]
		} else {
			names[i] = fmt.Sprintf("class-%d", i)
		}
	}
	return names
}

// NewDriver builds a Driver with the built-in collaborators: the
// simulated camera, the centroid engine and the terminal display.
// Callers replace individual collaborators before wiring the loop when
// real hardware is attached.
func (c *Config) NewDriver(log *coordlog.Log) (*Driver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	frame := vision.NewFrame(c.Width, c.Height, c.Channels)
	cam := &vision.SimSource{Width: c.Width, Height: c.Height, Channels: c.Channels}
	eng := engine.NewCentroid(c.Classes, c.NativeClasses)
	eng.Rate = float32(c.TrainRate)
	disp := &display.Term{Out: os.Stderr}
	return NewDriver(frame, cam, eng, disp, NoButtons{}, log, c.LabelNames()), nil
}
