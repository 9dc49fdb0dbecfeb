package sh

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/edgetalks/traincam.go/pkg/command"
	"github.com/edgetalks/traincam.go/pkg/comm/mqtt"
)

// Shell provides ishell backed interactive shell talking to an
// appliance over the broker.
type Shell struct {
	Interactive bool

	Shell  *ishell.Shell
	Queue  *mqtt.Queue
	Device string
}

const shellKey = "$shell"

var (
	// flags

	mqttURL  = "mqtt://localhost:1883/traincam/"
	deviceID string
	evalOnly bool

	// commands
	commands = []*ishell.Cmd{
		&TrainCmd,
		&InferCmd,
		&ValidateCmd,
		&ClassCmd,
		&SendCmd,
		&WatchCmd,
	}
)

func init() {
	if val := os.Getenv("TRAINCAM_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&deviceID, "device", deviceID, "Appliance ID.")
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(q *mqtt.Queue, device string) *Shell {
	s := &Shell{
		Interactive: !evalOnly,

		Shell:  ishell.New(),
		Queue:  q,
		Device: device,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(fmt.Sprintf("[%s] > ", device))
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Send publishes one command character to the appliance.
func (s *Shell) Send(ch byte) {
	token := s.Queue.Pub(s.Device+"/cmd", []byte{ch})
	token.Wait()
	if err := token.Error(); err != nil {
		log.Printf("send %q failed: %v", ch, err)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// TrainCmd switches the appliance into training mode.
	TrainCmd = ishell.Cmd{
		Name:    "train",
		Aliases: []string{"t"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Send('t')
		},
	}

	// InferCmd switches the appliance into inference mode.
	InferCmd = ishell.Cmd{
		Name:    "infer",
		Aliases: []string{"i"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Send('i')
		},
	}

	// ValidateCmd switches the appliance into validation mode.
	ValidateCmd = ishell.Cmd{
		Name:    "validate",
		Aliases: []string{"v"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Send('v')
		},
	}

	// ClassCmd selects a class to train on.
	ClassCmd = ishell.Cmd{
		Name:    "cls",
		Aliases: []string{"class"},
		Help:    "CLASS(0-9)",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("CLASS required"))
				return
			}
			val, err := strconv.Atoi(c.Args[0])
			if err != nil || val < 0 || val > 9 {
				c.Err(fmt.Errorf("Invalid CLASS: %s", c.Args[0]))
				return
			}
			ShellFrom(c).Send(byte('0' + val))
		},
	}

	// SendCmd sends a raw command character.
	SendCmd = ishell.Cmd{
		Name: "send",
		Help: "CHAR",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 || len(c.Args[0]) != 1 {
				c.Err(fmt.Errorf("single CHAR required"))
				return
			}
			ch := c.Args[0][0]
			if ch == command.NoCommand {
				c.Err(fmt.Errorf("%q is reserved", ch))
				return
			}
			ShellFrom(c).Send(ch)
		},
	}

	// WatchCmd prints the appliance coordination log until Enter.
	WatchCmd = ishell.Cmd{
		Name:    "watch",
		Aliases: []string{"w"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			sub := s.Queue.Sub(s.Device+"/log", func(topic string, payload []byte) {
				c.Print(string(payload))
			})
			defer sub.Close()
			c.Println("watching, press Enter to stop")
			c.ReadLine()
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()

	if deviceID == "" {
		log.Fatalln("-device required")
	}
	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	token := q.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		log.Fatalln(err)
	}
	defer q.Close()

	New(q, deviceID).Run(flag.Args()...)
}
