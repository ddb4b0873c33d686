// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gaspass/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	info models.AppBuildInfo
}

func NewAppInfoService(info models.AppBuildInfo) AppInfoService {
	return &appInfoService{info: info}
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}

// Version formats the build metadata on one line. Values not injected at
// link time print as N/A.
func (s *appInfoService) Version(ctx context.Context) string {
	return fmt.Sprintf("gaspass %s (commit %s, built %s)",
		orNotAvailable(s.info.BuildVersion()),
		orNotAvailable(s.info.BuildCommit()),
		orNotAvailable(s.info.BuildDate()),
	)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
