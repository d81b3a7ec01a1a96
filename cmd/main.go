package main

import (
	"chainhash/internal/config"
	"chainhash/internal/hashtable"
	"chainhash/pkg/logger"
)

func main() {
	// 初始化配置
	conf, err := config.NewConfig(".")
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	if err := logger.InitLogger(conf.LogLevel, conf.LogFile); err != nil {
		logger.Fatal("failed to init logger", "error", err)
	}
	defer logger.Sync()

	table, err := hashtable.New[rune, int](conf.Capacity)
	if err != nil {
		logger.Fatal("failed to create table", "error", err)
	}
	run(table)
}

func run(table *hashtable.HashTable[rune, int]) {
	log := logger.With("table", table.String())

	for i, k := range "abcdefghijk" {
		table.Put(k, 10-i)
	}
	log.Infow("inserted keys", "size", table.Size(), "stats", table.Stats())

	lookup := func(k rune) {
		if v, ok := table.Get(k); ok {
			log.Infow("lookup", "key", string(k), "value", v)
			return
		}
		log.Infow("lookup", "key", string(k), "found", false)
	}

	lookup('c')
	table.Put('c', 55)
	lookup('c')
	lookup('k')

	table.Delete('k')
	lookup('k')
	log.Infow("after delete", "size", table.Size(), "load_factor", table.LoadFactor())
}
