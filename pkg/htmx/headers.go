package htmx

// Response headers understood by the htmx client.
const (
	HeaderHXLocation   = "HX-Location"
	HeaderHXPushURL    = "HX-Push-Url"
	HeaderHXRedirect   = "HX-Redirect"
	HeaderHXRefresh    = "HX-Refresh"
	HeaderHXReplaceURL = "HX-Replace-Url"
	HeaderHXReswap     = "HX-Reswap"
	HeaderHXRetarget   = "HX-Retarget"
	HeaderHXTrigger    = "HX-Trigger"
)

// Request headers sent by the htmx client.
const (
	HeaderHXRequest     = "HX-Request"
	HeaderHXBoosted     = "HX-Boosted"
	HeaderHXCurrentURL  = "HX-Current-URL"
	HeaderHXTarget      = "HX-Target"
	HeaderHXTriggerName = "HX-Trigger-Name"
)
