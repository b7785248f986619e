package picker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/archtoys/archtoys-tools/internal/color"
	"github.com/archtoys/archtoys-tools/internal/logger"
)

const (
	kwinService   = "org.kde.KWin"
	kwinPath      = dbus.ObjectPath("/ColorPicker")
	kwinPickCall  = "org.kde.kwin.ColorPicker.pick"
	portalService = "org.freedesktop.portal.Desktop"
	portalPath    = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	portalCall    = "org.freedesktop.portal.Screenshot.PickColor"
)

var (
	errPortalRejected = errors.New("portal rejected the pick request")
	errPortalNoColor  = errors.New("portal response did not include a color")
	errPortalTimeout  = errors.New("timed out waiting for the portal response")
)

// pickColor runs the compositor-appropriate pick flow. A nil result with a
// nil error means the user cancelled the pick.
func pickColor(ctx context.Context, session SessionType) (*color.RGB, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}

	if session == SessionWayland {
		picked, kwinErr := pickViaKWin(conn)
		if kwinErr == nil {
			return picked, nil
		}

		logger.WarnKV(ctx, "KWin picker unavailable, trying portal", "error", kwinErr)
	}

	return pickViaPortal(ctx, conn)
}

// pickViaKWin asks the KWin compositor directly. The reply is a single ARGB
// integer; zero alpha signals cancellation.
func pickViaKWin(conn *dbus.Conn) (*color.RGB, error) {
	call := conn.Object(kwinService, kwinPath).Call(kwinPickCall, 0)
	if call.Err != nil {
		if strings.Contains(strings.ToLower(call.Err.Error()), "cancel") {
			return nil, nil
		}

		return nil, fmt.Errorf("kwin pick: %w", call.Err)
	}

	argb, err := argbFromKWinReply(call.Body)
	if err != nil {
		return nil, fmt.Errorf("kwin pick decode: %w", err)
	}

	if (argb>>24)&0xff == 0 {
		return nil, nil
	}

	return &color.RGB{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}, nil
}

// argbFromKWinReply decodes the picked ARGB value. KWin replies with a bare
// uint32 on some builds and with a single-field struct on others, so both
// shapes are accepted.
func argbFromKWinReply(body []interface{}) (uint32, error) {
	var argb uint32
	if err := dbus.Store(body, &argb); err == nil {
		return argb, nil
	}

	var wrapped struct{ Value uint32 }
	if err := dbus.Store(body, &wrapped); err != nil {
		return 0, err
	}

	return wrapped.Value, nil
}

// pickViaPortal drives the XDG desktop portal PickColor request and waits
// for the matching Response signal.
func pickViaPortal(ctx context.Context, conn *dbus.Conn) (*color.RGB, error) {
	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.portal.Request"),
		dbus.WithMatchMember("Response"),
	); err != nil {
		return nil, fmt.Errorf("portal signal match: %w", err)
	}

	defer func() {
		_ = conn.RemoveMatchSignal(
			dbus.WithMatchInterface("org.freedesktop.portal.Request"),
			dbus.WithMatchMember("Response"),
		)
	}()

	signals := make(chan *dbus.Signal, 8)
	conn.Signal(signals)

	defer conn.RemoveSignal(signals)

	options := map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(nextHandleToken()),
	}

	var handle dbus.ObjectPath

	call := conn.Object(portalService, portalPath).CallWithContext(ctx, portalCall, 0, "", options)
	if call.Err != nil {
		return nil, fmt.Errorf("portal PickColor: %w", call.Err)
	}

	if err := call.Store(&handle); err != nil {
		return nil, fmt.Errorf("portal PickColor reply: %w", err)
	}

	return waitForPortalResponse(ctx, signals, handle)
}

// waitForPortalResponse blocks until the Response signal for our request
// handle arrives.
func waitForPortalResponse(
	ctx context.Context,
	signals <-chan *dbus.Signal,
	handle dbus.ObjectPath,
) (*color.RGB, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, errPortalTimeout
		case signal, ok := <-signals:
			if !ok {
				return nil, errPortalTimeout
			}

			if signal.Path != handle || len(signal.Body) < 2 {
				continue
			}

			code, _ := signal.Body[0].(uint32)
			if code == 1 || code == 2 {
				return nil, nil
			}

			if code != 0 {
				return nil, fmt.Errorf("%w: code %d", errPortalRejected, code)
			}

			results, _ := signal.Body[1].(map[string]dbus.Variant)

			return colorFromPortalResults(results)
		}
	}
}

// colorFromPortalResults decodes the (ddd) color triple from the portal
// response. The channel values arrive as floats in the 0..1 range.
func colorFromPortalResults(results map[string]dbus.Variant) (*color.RGB, error) {
	variant, ok := results["color"]
	if !ok {
		return nil, errPortalNoColor
	}

	triple, ok := variant.Value().([]interface{})
	if !ok || len(triple) != 3 {
		return nil, errPortalNoColor
	}

	channels := make([]uint8, 0, 3)

	for _, raw := range triple {
		value, isFloat := raw.(float64)
		if !isFloat {
			return nil, errPortalNoColor
		}

		channels = append(channels, uint8(math.Round(math.Min(math.Max(value, 0), 1)*255)))
	}

	return &color.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// nextHandleToken produces a unique portal request token.
func nextHandleToken() string {
	return fmt.Sprintf("archtoys_pick_%d_%d", time.Now().UnixMilli(), os.Getpid())
}
