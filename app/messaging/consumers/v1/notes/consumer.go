package notes

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ribgsilva/geonote/business/v1/note"
	"github.com/ribgsilva/geonote/platform/location"
	"github.com/ribgsilva/geonote/sys"
	"gocloud.dev/pubsub"
)

func Consume(ctx context.Context, sub *pubsub.Subscription, store *note.Store, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		go func(m *pubsub.Message) {
			workers <- 1
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case "create":
				var c note.NewNote
				marshal, _ := json.Marshal(e.Data)
				_ = json.Unmarshal(marshal, &c)

				// a lone latitude or longitude is no location at all
				var coord *location.Coordinate
				if c.Latitude != nil && c.Longitude != nil {
					coord = &location.Coordinate{Latitude: *c.Latitude, Longitude: *c.Longitude}
				}

				if _, err := store.Add(ctx, c.Content, coord); err != nil {
					logger.Errorf("failed to create note from event %+v: err: %s", e.Data, err)
				}
			default:
				logger.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
