package cli

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/pipeline"
	"github.com/matzehuels/graphgen/pkg/publish"
)

// Default destinations for event publishing.
const (
	defaultRedisStream     = "graphgen:events"
	defaultMongoDatabase   = "graphgen"
	defaultMongoCollection = "events"
)

// publishOpts holds the publishing flags of the generate command.
type publishOpts struct {
	RedisAddr       string
	RedisStream     string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}

func (p publishOpts) enabled() bool {
	return p.RedisAddr != "" || p.MongoURI != ""
}

// publish replays the run's event stream into every configured backend.
func (c *CLI) publish(ctx context.Context, runner *pipeline.Runner, result *pipeline.Result, opts publishOpts) error {
	if !opts.enabled() {
		return nil
	}

	prog := newProgress(c.Logger)
	if opts.RedisAddr != "" {
		if err := c.publishRedis(ctx, runner, result, opts); err != nil {
			return err
		}
	}
	if opts.MongoURI != "" {
		if err := c.publishMongo(ctx, runner, result, opts); err != nil {
			return err
		}
	}
	prog.done("Publishing complete")
	return nil
}

func (c *CLI) publishRedis(ctx context.Context, runner *pipeline.Runner, result *pipeline.Result, opts publishOpts) error {
	client := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
	defer client.Close()

	sink := publish.NewRedisSink(ctx, client, opts.RedisStream)
	runner.Publish(result, sink)
	if err := sink.Err(); err != nil {
		return errors.Wrap(errors.ErrCodePublishFailed, err,
			"publish to redis stream %q", opts.RedisStream)
	}

	printSuccess("Published %d events to Redis", len(result.Events))
	printDetail("Stream: %s · run %s", opts.RedisStream, sink.RunID())
	return nil
}

func (c *CLI) publishMongo(ctx context.Context, runner *pipeline.Runner, result *pipeline.Result, opts publishOpts) error {
	client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(opts.MongoURI))
	if err != nil {
		return errors.Wrap(errors.ErrCodePublishFailed, err, "connect to mongodb")
	}
	defer func() {
		if derr := client.Disconnect(ctx); derr != nil {
			c.Logger.Debug("mongodb disconnect", "err", derr)
		}
	}()

	coll := client.Database(opts.MongoDatabase).Collection(opts.MongoCollection)
	sink := publish.NewMongoSink(ctx, coll)
	runner.Publish(result, sink)
	if err := sink.Err(); err != nil {
		return errors.Wrap(errors.ErrCodePublishFailed, err,
			"publish to mongodb collection %q", opts.MongoCollection)
	}

	printSuccess("Published %d events to MongoDB", len(result.Events))
	printDetail("Collection: %s.%s · run %s",
		opts.MongoDatabase, opts.MongoCollection, sink.RunID())
	return nil
}
