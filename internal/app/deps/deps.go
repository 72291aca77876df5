package deps

import (
	"context"
	"reemind/internal/config"
	dl "reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/owner"
	drl "reemind/internal/core/domain/rate_limiter"
	"reemind/internal/core/domain/reminder"
	dbowner "reemind/internal/db/owner"
	dbreminder "reemind/internal/db/reminder"
	"reemind/internal/implementations/email"
	"reemind/internal/implementations/logging"
	logincode "reemind/internal/implementations/login_code"
	ratelimiter "reemind/internal/implementations/rate_limiter"
	"reemind/internal/implementations/session"
	sweepevents "reemind/internal/implementations/sweep_events"
	"reemind/internal/rabbitmq"
	confirmation "reemind/internal/rabbitmq/publishers/confirmation"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	ReminderRepository reminder.Repository
	LogRepository      reminder.LogRepository
	OwnerRepository    owner.Repository

	RateLimiter drl.RateLimiter

	EmailSender          *email.EmailSender
	ConfirmationEnqueuer reminder.ConfirmationEnqueuer
	SweepEventPublisher  reminder.SweepEventPublisher

	SessionRepository     owner.SessionRepository
	SessionTokenGenerator owner.SessionTokenGenerator
	LoginCodeRepository   owner.LoginCodeRepository
	LoginCodeGenerator    owner.LoginCodeGenerator
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.ReminderRepository = dbreminder.NewPgxReminderRepository(deps.DB)
	deps.LogRepository = dbreminder.NewPgxLogRepository(deps.DB)
	deps.OwnerRepository = dbowner.NewPgxOwnerRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.EmailSender = email.NewEmailSender(deps.AwsConfig, deps.Config.EmailSender, deps.Now)
	deps.SweepEventPublisher = sweepevents.NewSSE(deps.Logger, deps.SseServer)

	deps.SessionRepository = session.NewRedisRepository(deps.Redis)
	deps.SessionTokenGenerator = session.NewGenerator()
	deps.LoginCodeRepository = logincode.NewRedisRepository(deps.Redis)
	deps.LoginCodeGenerator = logincode.NewGenerator()

	closeConfirmationEnqueuer := deps.initRabbitmqConfirmationEnqueuer()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeConfirmationEnqueuer,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqConfirmationEnqueuer() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqConfirmationQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	deps.ConfirmationEnqueuer = confirmation.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqConfirmationQueue,
	)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ confirmation channel.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ confirmation channel shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	sseServer := sse.New()
	sseServer.AutoReplay = false
	sseServer.CreateStream(sweepevents.StreamID)
	deps.SseServer = sseServer
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		sseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}
