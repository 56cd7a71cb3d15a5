package main

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/gofish/config"
	"github.com/ratel-online/gofish/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}
	async.Async(func() {
		log.Error(network.NewWebsocketServer(cfg.WSAddr).Serve())
	})
	log.Error(network.NewTcpServer(cfg.TCPAddr).Serve())
}
