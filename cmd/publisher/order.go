package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/customer-page-service/internal/adapter/kafkafeed"
	"github.com/example/customer-page-service/internal/adapter/natsstan"
	"github.com/example/customer-page-service/internal/config"
	"github.com/example/customer-page-service/internal/domain"
)

type orderPublisher interface {
	Publish(ctx context.Context, key, raw []byte) error
	Close() error
}

func newOrderCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Publish an order JSON document to the order feed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			raw, o, err := readOrder(in)
			if err != nil {
				return err
			}

			pub, err := newOrderPublisher(cfg.Feed)
			if err != nil {
				return err
			}
			defer pub.Close()

			key := []byte(strconv.FormatInt(o.IDValue(), 10))
			if err := pub.Publish(cmd.Context(), key, raw); err != nil {
				return fmt.Errorf("publish: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published order %s (%d bytes) to %s\n", o.Reference, len(raw), cfg.Feed.Kind)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the order from a file instead of stdin")
	return cmd
}

// readOrder rejects documents the service would refuse to ingest.
func readOrder(r io.Reader) ([]byte, domain.Order, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.Order{}, fmt.Errorf("read order: %w", err)
	}
	var o domain.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, domain.Order{}, fmt.Errorf("decode order: %w", err)
	}
	if !o.Found() || o.CustomerID == 0 {
		return nil, domain.Order{}, fmt.Errorf("order needs id_sales_order and fk_customer: %w", domain.ErrValidation)
	}
	return raw, o, nil
}

func newOrderPublisher(cfg config.Feed) (orderPublisher, error) {
	if cfg.Kind == config.FeedKafka {
		return kafkafeed.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic), nil
	}
	clientID := cfg.Stan.ClientID
	if clientID == "" {
		clientID = "customer-page-publisher"
	}
	return natsstan.NewPublisher(cfg.Stan.ClusterID, clientID, cfg.Stan.URL, cfg.Stan.Subject)
}
