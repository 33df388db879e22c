package etcd

import (
	"context"
	"errors"
	"testing"

	"go.etcd.io/etcd/api/v3/mvccpb"
	clientv3 "go.etcd.io/etcd/client/v3"
)

type fakeKV struct {
	clientv3.KV
	values map[string]string
	err    error
}

func (f fakeKV) Get(_ context.Context, key string, _ ...clientv3.OpOption) (*clientv3.GetResponse, error) {
	if f.err != nil {
		return nil, f.err
	}

	resp := &clientv3.GetResponse{}
	if v, ok := f.values[key]; ok {
		resp.Kvs = []*mvccpb.KeyValue{{Key: []byte(key), Value: []byte(v)}}
	}
	return resp, nil
}

func TestGet(t *testing.T) {
	errUnavailable := errors.New("unavailable")

	tests := []struct {
		name    string
		kv      fakeKV
		want    string
		wantErr error
	}{
		{
			name: "happy_path",
			kv:   fakeKV{values: map[string]string{"/interactor/public_key": "0123abcd\n"}},
			want: "0123abcd",
		},
		{
			name:    "not_found",
			kv:      fakeKV{values: map[string]string{}},
			wantErr: ErrKeyNotFound,
		},
		{
			name:    "etcd_error",
			kv:      fakeKV{err: errUnavailable},
			wantErr: errUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(t.Context(), tt.kv, "/interactor/public_key")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Get() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}
		})
	}
}
