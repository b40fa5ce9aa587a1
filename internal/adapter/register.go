package adapter

import (
	"github.com/user/cloud-balance-monitor/internal/adapter/aliyun"
	"github.com/user/cloud-balance-monitor/internal/adapter/doudian"
	"github.com/user/cloud-balance-monitor/internal/adapter/huawei"
	"github.com/user/cloud-balance-monitor/internal/adapter/qiniu"
	"github.com/user/cloud-balance-monitor/internal/adapter/tencent"
	"github.com/user/cloud-balance-monitor/internal/adapter/volcengine"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

func RegisterAll(r *provider.Registry) {
	r.Register(aliyun.New())
	r.Register(volcengine.New())
	r.Register(tencent.New())
	r.Register(doudian.New())
	r.Register(huawei.New())
	r.Register(qiniu.New())
}
