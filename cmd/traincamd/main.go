package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"net/http"
	"os"

	"github.com/golang/glog"

	"github.com/edgetalks/traincam.go/pkg/appliance"
	"github.com/edgetalks/traincam.go/pkg/command"
	"github.com/edgetalks/traincam.go/pkg/comm/mqtt"
	"github.com/edgetalks/traincam.go/pkg/coordlog"
	fx "github.com/edgetalks/traincam.go/pkg/framework"
)

func init() {
	appliance.SetupFlags()
}

func main() {
	flag.Parse()

	conf := appliance.NewConfig()
	log := coordlog.New(os.Stdout)
	driver, err := conf.NewDriver(log)
	if err != nil {
		glog.Exit(err)
	}

	loop := fx.NewLoop().Add(driver)
	loop.Add(&command.StreamSource{Reader: os.Stdin})

	if conf.MQTTBrokerURL != "" {
		q, err := mqtt.NewQueueFromURL(conf.MQTTBrokerURL)
		if err != nil {
			glog.Exit(err)
		}
		token := q.Connect()
		token.Wait()
		if err := token.Error(); err != nil {
			glog.Exit(err)
		}
		defer q.Close()
		id := appliance.ApplianceID()
		log.Attach(&mqtt.TopicWriter{Queue: q, Topic: id + "/log"})
		loop.Add(&command.MQTTSource{Queue: q, Topic: id + "/cmd"})
	}

	if conf.ListenAddr != "" {
		hub := coordlog.NewHub()
		log.Attach(hub)
		http.Handle("/log", hub.Handler())
		go func() {
			if err := http.ListenAndServe(conf.ListenAddr, nil); err != nil {
				glog.Exit(err)
			}
		}()
	}

	if err := fx.NewRunner().HandleSignals().Go(loop).Wait(); err != nil {
		glog.Exit(err)
	}
}
