package main

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	omsv1 "github.com/vladislavdragonenkov/ordering/proto/oms/v1"
)

const scenarioMethod = "scenario"

// target: товар и клиент, общие для всех сценариев прогона.
type target struct {
	productID  string
	customerID string
}

// runScenario проводит один заказ по жизненному циклу, выбранному режимом.
func runScenario(ctx context.Context, client omsv1.OrderServiceClient, cfg config, tgt target, col *collector) (err error) {
	start := time.Now()
	defer func() {
		col.record(scenarioMethod, time.Since(start), grpcCode(err))
	}()

	created, err := call(ctx, col, cfg.timeout, "CreateOrder", func(ctx context.Context) (*omsv1.OrderResponse, error) {
		return client.CreateOrder(ctx, &omsv1.CreateOrderRequest{CustomerId: tgt.customerID})
	})
	if err != nil {
		return err
	}
	orderID := created.GetOrder().GetId()
	if orderID == "" {
		return status.Error(codes.Internal, "create response returned empty order id")
	}

	_, err = call(ctx, col, cfg.timeout, "AddOrderLine", func(ctx context.Context) (*omsv1.OrderResponse, error) {
		return client.AddOrderLine(ctx, &omsv1.AddOrderLineRequest{
			OrderId:   orderID,
			ProductId: tgt.productID,
			Quantity:  int32(cfg.quantity),
		})
	})
	if err != nil || cfg.mode == modeCreate {
		return err
	}

	confirmed, err := call(ctx, col, cfg.timeout, "ConfirmOrder", func(ctx context.Context) (*omsv1.OrderResponse, error) {
		return client.ConfirmOrder(ctx, &omsv1.ConfirmOrderRequest{OrderId: orderID})
	})
	if err != nil {
		return err
	}
	if confirmed.GetOrder().GetStatus() != omsv1.OrderStatus_ORDER_STATUS_CONFIRMED {
		return status.Error(codes.Internal, "order was not confirmed")
	}
	if cfg.mode != modeCreateConfirmCancel {
		return nil
	}

	_, err = call(ctx, col, cfg.timeout, "CancelOrder", func(ctx context.Context) (*omsv1.OrderResponse, error) {
		return client.CancelOrder(ctx, &omsv1.CancelOrderRequest{OrderId: orderID, Reason: "load-cancel"})
	})
	return err
}

func call(
	ctx context.Context,
	col *collector,
	timeout time.Duration,
	method string,
	fn func(context.Context) (*omsv1.OrderResponse, error),
) (*omsv1.OrderResponse, error) {
	start := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := fn(callCtx)
	col.record(method, time.Since(start), grpcCode(err))
	return resp, err
}

func grpcCode(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return status.Code(err)
	}
}
