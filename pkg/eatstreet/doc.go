// Package eatstreet provides types, interfaces, and helpers for working with
// the EatStreet public API (v1).
//
// # Overview
//
// The eatstreet package defines the domain types (User, Restaurant, Order,
// Address, CreditCard, and the menu tree) and the interfaces for the
// resource-oriented clients (UsersClient, RestaurantsClient, OrdersClient).
// A concrete implementation of these clients is provided by the esclient
// package, which wires configuration, transport, and credentials. Most
// consumers should import esclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/eatstreet-community/eatstreet-go/pkg/eatstreet"
//	  "github.com/eatstreet-community/eatstreet-go/pkg/esclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := esclient.New(&eatstreet.Config{AccessToken: "<developer token>"})
//	  if err != nil { log.Fatal(err) }
//
//	  restaurants, err := cli.Restaurants().SearchByAddress(ctx,
//	    "316 W. Washington Ave., Madison, WI", eatstreet.MethodDelivery, 2)
//	  if err != nil { log.Fatal(err) }
//	  _ = restaurants
//	}
//
// # Errors
//
// API-reported errors are represented by APIError; unexpected statuses by
// StatusError; connection and URL failures by TransportError. Helpers such as
// IsAPIError and AsAPIError make it easy to branch on server-reported error
// codes. Operations that require a signed-in user fail with
// ErrUserTokenRequired before any network call when no user token is set.
//
// # Sessions
//
// All credential state lives on the Credentials object held by the client, so
// multiple independent sessions can coexist in one process. A single client
// and its caches are not safe for concurrent mutation without external
// synchronization.
package eatstreet
