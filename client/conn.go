// Copyright 2026 The backupctl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client holds the handles every command works through: a
// Connection to the cluster keeping the backup metadata, the Admin handle
// for mutating operations, and the Store handle for reads.
//
// Expected schema, in the configured keyspace:
//
//	CREATE TABLE backup_info (
//	    id          text PRIMARY KEY,
//	    backup_type text,
//	    state       text,
//	    tables      set<text>,
//	    target_root text,
//	    progress    int,
//	    start_ts    bigint,
//	    end_ts      bigint
//	);
//
//	CREATE TABLE backup_sets (
//	    name   text PRIMARY KEY,
//	    tables set<text>
//	);
package client

import (
	"context"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
)

type Connection interface {
	Admin() Admin
	Store() Store
	Close()
}

// ConnectFunc lets tests substitute a fake for CreateConnection.
type ConnectFunc func(ctx context.Context, cfg *Config) (Connection, error)

func CreateConnection(ctx context.Context, cfg *Config) (Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Port = cfg.Port
	cluster.Keyspace = cfg.Keyspace
	cluster.Timeout = cfg.Timeout
	cluster.NumConns = 1
	cluster.Consistency = gocql.LocalQuorum
	if cfg.Consistency != "" {
		consistency, err := gocql.ParseConsistencyWrapper(cfg.Consistency)
		if err != nil {
			return nil, err
		}
		cluster.Consistency = consistency
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, err
	}
	return &cqlConnection{session: session}, nil
}

type cqlConnection struct {
	session *gocql.Session
}

func (c *cqlConnection) Admin() Admin {
	return &cqlAdmin{session: c.session}
}

func (c *cqlConnection) Store() Store {
	return &cqlStore{session: c.session}
}

func (c *cqlConnection) Close() {
	c.session.Close()
}
