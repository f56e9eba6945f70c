package main

import (
	"log"
	"os"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/grading"
	"github.com/shulehub/shule/core/school"
	"github.com/shulehub/shule/core/subscription"
	"github.com/shulehub/shule/core/user"
	logsvc "github.com/shulehub/shule/services/logger"
	restrepos "github.com/shulehub/shule/storage/rest"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "SHULECTL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	var logSvc core.Logger = logsvc.NewConsoleLogger(logger)
	if conf.RollbarToken != "" {
		logSvc = logsvc.NewRollbarLogger(logger, conf)
	}

	session := core.NewSession(loadToken())

	client, err := restrepos.NewClient(conf, session, logSvc)
	errAndDie(err)

	store := cache.NewStore(conf.CacheTTL)

	// start CLI
	cli := commandLine{
		session: session,
		usrSvc:  user.NewService(restrepos.NewUserRepository(client), store),
		schSvc:  school.NewService(restrepos.NewSchoolRepository(client), store),
		subsSvc: subscription.NewService(restrepos.NewSubscriptionRepository(client), store),
		gradSvc: grading.NewService(restrepos.NewGradingRepository(client), store),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
