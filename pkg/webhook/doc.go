// Package webhook handles the notifications the gateway sends about payment
// lifecycle events.
//
// # Pipeline
//
// A callback passes four checks, in order, each short-circuiting on failure:
//
//  1. source IP must be one of the gateway's servers (AllowedIPs);
//  2. method and params must be present and non-empty;
//  3. method must be check, pay, preAuth or error;
//  4. the signature recomputed over the sorted parameters (with the method
//     prepended and the project secret appended) must match params["signature"]
//     in constant time.
//
// The result is always an Outcome value, never an error:
//
//	h, _ := webhook.NewHandler(cfg, locale.English)
//	out := h.Handle(webhook.Callback{
//		Method:   "pay",
//		Params:   params,
//		SourceIP: ip,
//	})
//	// out.Success, out.Error ("invalid_ip", ...), out.Message (localized)
//
// # Classification
//
// An authenticated callback classifies into exactly one of four states via
// IsWaiting, IsSuccess, IsPreAuth and HasFailed. Classification is per
// callback; no state machine spans requests.
//
// # HTTP adapter
//
// Handler is an http.Handler for the gateway's GET callback shape
// (?method=...&params[k]=v). It always answers 200 with a JSON body. Mount it
// on any router:
//
//	r := chi.NewRouter()
//	r.Handle("/unitpay/callback", h)
//
// # Metrics
//
// Processed callbacks are counted in the Prometheus counter
// unitpay_webhook_outcomes_total, labeled by outcome kind.
package webhook
