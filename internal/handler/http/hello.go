// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hello-backend/internal/app"
	"github.com/MKhiriev/hello-backend/internal/utils"
)

// hello responds with the fixed greeting. It reads nothing from the request.
func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteText(w, app.MsgHelloWorld, http.StatusOK); err != nil {
		h.logger.Err(err).Msg("error writing hello response")
	}
}
