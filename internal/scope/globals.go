package scope

// KnownGlobals is the set of identifier names assumed to exist in every
// JavaScript host environment (DOM, web APIs, ECMAScript intrinsics, and the
// window-scope properties). A reference that misses every enclosing scope is
// resolved against this set before being reported as unresolved; it is the
// floor for the "globals-tolerant" lookup policy.
//
// Derived from the root identifiers of a browser/ECMAScript global survey;
// property chains are collapsed to their leading name since scope resolution
// only needs to know whether the root identifier is ambient.
var KnownGlobals = map[string]bool{
	"AbortController": true,
	"AbortSignal": true,
	"AggregateError": true,
	"AnalyserNode": true,
	"Animation": true,
	"AnimationEffect": true,
	"AnimationEvent": true,
	"AnimationPlaybackEvent": true,
	"AnimationTimeline": true,
	"Array": true,
	"ArrayBuffer": true,
	"Attr": true,
	"Audio": true,
	"AudioBuffer": true,
	"AudioBufferSourceNode": true,
	"AudioDestinationNode": true,
	"AudioListener": true,
	"AudioNode": true,
	"AudioParam": true,
	"AudioProcessingEvent": true,
	"AudioScheduledSourceNode": true,
	"BarProp": true,
	"BeforeUnloadEvent": true,
	"BigInt": true,
	"BiquadFilterNode": true,
	"Blob": true,
	"BlobEvent": true,
	"Boolean": true,
	"ByteLengthQueuingStrategy": true,
	"CDATASection": true,
	"CSS": true,
	"CSSAnimation": true,
	"CSSFontFaceRule": true,
	"CSSImportRule": true,
	"CSSKeyframeRule": true,
	"CSSKeyframesRule": true,
	"CSSMediaRule": true,
	"CSSNamespaceRule": true,
	"CSSPageRule": true,
	"CSSRule": true,
	"CSSRuleList": true,
	"CSSStyleDeclaration": true,
	"CSSStyleRule": true,
	"CSSStyleSheet": true,
	"CSSSupportsRule": true,
	"CSSTransition": true,
	"CanvasGradient": true,
	"CanvasPattern": true,
	"CanvasRenderingContext2D": true,
	"ChannelMergerNode": true,
	"ChannelSplitterNode": true,
	"CharacterData": true,
	"ClipboardEvent": true,
	"CloseEvent": true,
	"Comment": true,
	"CompositionEvent": true,
	"ConvolverNode": true,
	"CountQueuingStrategy": true,
	"Crypto": true,
	"CustomElementRegistry": true,
	"CustomEvent": true,
	"DOMException": true,
	"DOMImplementation": true,
	"DOMMatrix": true,
	"DOMMatrixReadOnly": true,
	"DOMParser": true,
	"DOMPoint": true,
	"DOMPointReadOnly": true,
	"DOMQuad": true,
	"DOMRect": true,
	"DOMRectList": true,
	"DOMRectReadOnly": true,
	"DOMStringList": true,
	"DOMStringMap": true,
	"DOMTokenList": true,
	"DataTransfer": true,
	"DataTransferItem": true,
	"DataTransferItemList": true,
	"DataView": true,
	"Date": true,
	"DelayNode": true,
	"Document": true,
	"DocumentFragment": true,
	"DocumentTimeline": true,
	"DocumentType": true,
	"DragEvent": true,
	"DynamicsCompressorNode": true,
	"Element": true,
	"Error": true,
	"ErrorEvent": true,
	"EvalError": true,
	"Event": true,
	"EventSource": true,
	"EventTarget": true,
	"File": true,
	"FileList": true,
	"FileReader": true,
	"Float32Array": true,
	"Float64Array": true,
	"FocusEvent": true,
	"FontFace": true,
	"FormData": true,
	"Function": true,
	"GainNode": true,
	"Gamepad": true,
	"GamepadButton": true,
	"GamepadEvent": true,
	"Geolocation": true,
	"GeolocationPositionError": true,
	"HTMLAllCollection": true,
	"HTMLAnchorElement": true,
	"HTMLAreaElement": true,
	"HTMLAudioElement": true,
	"HTMLBRElement": true,
	"HTMLBaseElement": true,
	"HTMLBodyElement": true,
	"HTMLButtonElement": true,
	"HTMLCanvasElement": true,
	"HTMLCollection": true,
	"HTMLDListElement": true,
	"HTMLDataElement": true,
	"HTMLDataListElement": true,
	"HTMLDetailsElement": true,
	"HTMLDirectoryElement": true,
	"HTMLDivElement": true,
	"HTMLDocument": true,
	"HTMLElement": true,
	"HTMLEmbedElement": true,
	"HTMLFieldSetElement": true,
	"HTMLFontElement": true,
	"HTMLFormControlsCollection": true,
	"HTMLFormElement": true,
	"HTMLFrameElement": true,
	"HTMLFrameSetElement": true,
	"HTMLHRElement": true,
	"HTMLHeadElement": true,
	"HTMLHeadingElement": true,
	"HTMLHtmlElement": true,
	"HTMLIFrameElement": true,
	"HTMLImageElement": true,
	"HTMLInputElement": true,
	"HTMLLIElement": true,
	"HTMLLabelElement": true,
	"HTMLLegendElement": true,
	"HTMLLinkElement": true,
	"HTMLMapElement": true,
	"HTMLMarqueeElement": true,
	"HTMLMediaElement": true,
	"HTMLMenuElement": true,
	"HTMLMetaElement": true,
	"HTMLMeterElement": true,
	"HTMLModElement": true,
	"HTMLOListElement": true,
	"HTMLObjectElement": true,
	"HTMLOptGroupElement": true,
	"HTMLOptionElement": true,
	"HTMLOptionsCollection": true,
	"HTMLOutputElement": true,
	"HTMLParagraphElement": true,
	"HTMLParamElement": true,
	"HTMLPictureElement": true,
	"HTMLPreElement": true,
	"HTMLProgressElement": true,
	"HTMLQuoteElement": true,
	"HTMLScriptElement": true,
	"HTMLSelectElement": true,
	"HTMLSlotElement": true,
	"HTMLSourceElement": true,
	"HTMLSpanElement": true,
	"HTMLStyleElement": true,
	"HTMLTableCaptionElement": true,
	"HTMLTableCellElement": true,
	"HTMLTableColElement": true,
	"HTMLTableElement": true,
	"HTMLTableRowElement": true,
	"HTMLTableSectionElement": true,
	"HTMLTemplateElement": true,
	"HTMLTextAreaElement": true,
	"HTMLTimeElement": true,
	"HTMLTitleElement": true,
	"HTMLTrackElement": true,
	"HTMLUListElement": true,
	"HTMLUnknownElement": true,
	"HTMLVideoElement": true,
	"HashChangeEvent": true,
	"Headers": true,
	"History": true,
	"IDBCursor": true,
	"IDBCursorWithValue": true,
	"IDBDatabase": true,
	"IDBFactory": true,
	"IDBIndex": true,
	"IDBKeyRange": true,
	"IDBObjectStore": true,
	"IDBOpenDBRequest": true,
	"IDBRequest": true,
	"IDBTransaction": true,
	"IDBVersionChangeEvent": true,
	"Image": true,
	"ImageData": true,
	"InputEvent": true,
	"Int16Array": true,
	"Int32Array": true,
	"Int8Array": true,
	"IntersectionObserver": true,
	"IntersectionObserverEntry": true,
	"Intl": true,
	"JSON": true,
	"KeyboardEvent": true,
	"KeyframeEffect": true,
	"Location": true,
	"Map": true,
	"Math": true,
	"MediaCapabilities": true,
	"MediaElementAudioSourceNode": true,
	"MediaEncryptedEvent": true,
	"MediaError": true,
	"MediaList": true,
	"MediaQueryList": true,
	"MediaQueryListEvent": true,
	"MediaRecorder": true,
	"MediaSource": true,
	"MediaStream": true,
	"MediaStreamAudioDestinationNode": true,
	"MediaStreamAudioSourceNode": true,
	"MediaStreamTrack": true,
	"MediaStreamTrackEvent": true,
	"MessageChannel": true,
	"MessageEvent": true,
	"MessagePort": true,
	"MimeType": true,
	"MimeTypeArray": true,
	"MouseEvent": true,
	"MutationEvent": true,
	"MutationObserver": true,
	"MutationRecord": true,
	"NamedNodeMap": true,
	"Navigator": true,
	"Node": true,
	"NodeFilter": true,
	"NodeIterator": true,
	"NodeList": true,
	"Notification": true,
	"Number": true,
	"Object": true,
	"OfflineAudioCompletionEvent": true,
	"Option": true,
	"OscillatorNode": true,
	"PageTransitionEvent": true,
	"Path2D": true,
	"Performance": true,
	"PerformanceEntry": true,
	"PerformanceMark": true,
	"PerformanceMeasure": true,
	"PerformanceNavigation": true,
	"PerformanceObserver": true,
	"PerformanceObserverEntryList": true,
	"PerformanceResourceTiming": true,
	"PerformanceTiming": true,
	"PeriodicWave": true,
	"Plugin": true,
	"PluginArray": true,
	"PointerEvent": true,
	"PopStateEvent": true,
	"ProcessingInstruction": true,
	"ProgressEvent": true,
	"Promise": true,
	"PromiseRejectionEvent": true,
	"Proxy": true,
	"RTCCertificate": true,
	"RTCDTMFSender": true,
	"RTCDTMFToneChangeEvent": true,
	"RTCDataChannel": true,
	"RTCDataChannelEvent": true,
	"RTCIceCandidate": true,
	"RTCPeerConnection": true,
	"RTCPeerConnectionIceEvent": true,
	"RTCRtpReceiver": true,
	"RTCRtpSender": true,
	"RTCRtpTransceiver": true,
	"RTCSessionDescription": true,
	"RTCStatsReport": true,
	"RTCTrackEvent": true,
	"RadioNodeList": true,
	"Range": true,
	"RangeError": true,
	"ReadableStream": true,
	"ReferenceError": true,
	"Reflect": true,
	"RegExp": true,
	"Request": true,
	"ResizeObserver": true,
	"ResizeObserverEntry": true,
	"Response": true,
	"SVGAElement": true,
	"SVGAngle": true,
	"SVGAnimateElement": true,
	"SVGAnimateMotionElement": true,
	"SVGAnimateTransformElement": true,
	"SVGAnimatedAngle": true,
	"SVGAnimatedBoolean": true,
	"SVGAnimatedEnumeration": true,
	"SVGAnimatedInteger": true,
	"SVGAnimatedLength": true,
	"SVGAnimatedLengthList": true,
	"SVGAnimatedNumber": true,
	"SVGAnimatedNumberList": true,
	"SVGAnimatedPreserveAspectRatio": true,
	"SVGAnimatedRect": true,
	"SVGAnimatedString": true,
	"SVGAnimatedTransformList": true,
	"SVGAnimationElement": true,
	"SVGCircleElement": true,
	"SVGClipPathElement": true,
	"SVGComponentTransferFunctionElement": true,
	"SVGDefsElement": true,
	"SVGDescElement": true,
	"SVGElement": true,
	"SVGEllipseElement": true,
	"SVGFEBlendElement": true,
	"SVGFEColorMatrixElement": true,
	"SVGFEComponentTransferElement": true,
	"SVGFECompositeElement": true,
	"SVGFEConvolveMatrixElement": true,
	"SVGFEDiffuseLightingElement": true,
	"SVGFEDisplacementMapElement": true,
	"SVGFEDistantLightElement": true,
	"SVGFEDropShadowElement": true,
	"SVGFEFloodElement": true,
	"SVGFEFuncAElement": true,
	"SVGFEFuncBElement": true,
	"SVGFEFuncGElement": true,
	"SVGFEFuncRElement": true,
	"SVGFEGaussianBlurElement": true,
	"SVGFEImageElement": true,
	"SVGFEMergeElement": true,
	"SVGFEMergeNodeElement": true,
	"SVGFEMorphologyElement": true,
	"SVGFEOffsetElement": true,
	"SVGFEPointLightElement": true,
	"SVGFESpecularLightingElement": true,
	"SVGFESpotLightElement": true,
	"SVGFETileElement": true,
	"SVGFETurbulenceElement": true,
	"SVGFilterElement": true,
	"SVGForeignObjectElement": true,
	"SVGGElement": true,
	"SVGGeometryElement": true,
	"SVGGradientElement": true,
	"SVGGraphicsElement": true,
	"SVGImageElement": true,
	"SVGLength": true,
	"SVGLengthList": true,
	"SVGLineElement": true,
	"SVGLinearGradientElement": true,
	"SVGMPathElement": true,
	"SVGMarkerElement": true,
	"SVGMaskElement": true,
	"SVGMatrix": true,
	"SVGMetadataElement": true,
	"SVGNumber": true,
	"SVGNumberList": true,
	"SVGPathElement": true,
	"SVGPatternElement": true,
	"SVGPoint": true,
	"SVGPointList": true,
	"SVGPolygonElement": true,
	"SVGPolylineElement": true,
	"SVGPreserveAspectRatio": true,
	"SVGRadialGradientElement": true,
	"SVGRect": true,
	"SVGRectElement": true,
	"SVGSVGElement": true,
	"SVGScriptElement": true,
	"SVGSetElement": true,
	"SVGStopElement": true,
	"SVGStringList": true,
	"SVGStyleElement": true,
	"SVGSwitchElement": true,
	"SVGSymbolElement": true,
	"SVGTSpanElement": true,
	"SVGTextContentElement": true,
	"SVGTextElement": true,
	"SVGTextPathElement": true,
	"SVGTextPositioningElement": true,
	"SVGTitleElement": true,
	"SVGTransform": true,
	"SVGTransformList": true,
	"SVGUnitTypes": true,
	"SVGUseElement": true,
	"SVGViewElement": true,
	"Screen": true,
	"ScriptProcessorNode": true,
	"SecurityPolicyViolationEvent": true,
	"Selection": true,
	"Set": true,
	"ShadowRoot": true,
	"SourceBuffer": true,
	"SourceBufferList": true,
	"SpeechSynthesisEvent": true,
	"SpeechSynthesisUtterance": true,
	"StaticRange": true,
	"Storage": true,
	"StorageEvent": true,
	"String": true,
	"StyleSheet": true,
	"StyleSheetList": true,
	"Symbol": true,
	"SyntaxError": true,
	"Text": true,
	"TextDecoder": true,
	"TextEncoder": true,
	"TextMetrics": true,
	"TextTrack": true,
	"TextTrackCue": true,
	"TextTrackCueList": true,
	"TextTrackList": true,
	"TimeRanges": true,
	"TrackEvent": true,
	"TransitionEvent": true,
	"TreeWalker": true,
	"TypeError": true,
	"UIEvent": true,
	"URIError": true,
	"URL": true,
	"URLSearchParams": true,
	"Uint16Array": true,
	"Uint32Array": true,
	"Uint8Array": true,
	"Uint8ClampedArray": true,
	"VTTCue": true,
	"ValidityState": true,
	"VisualViewport": true,
	"WaveShaperNode": true,
	"WeakMap": true,
	"WeakSet": true,
	"WebAssembly": true,
	"WebGLActiveInfo": true,
	"WebGLBuffer": true,
	"WebGLContextEvent": true,
	"WebGLFramebuffer": true,
	"WebGLProgram": true,
	"WebGLQuery": true,
	"WebGLRenderbuffer": true,
	"WebGLRenderingContext": true,
	"WebGLSampler": true,
	"WebGLShader": true,
	"WebGLShaderPrecisionFormat": true,
	"WebGLSync": true,
	"WebGLTexture": true,
	"WebGLUniformLocation": true,
	"WebKitCSSMatrix": true,
	"WebSocket": true,
	"WheelEvent": true,
	"Window": true,
	"Worker": true,
	"XMLDocument": true,
	"XMLHttpRequest": true,
	"XMLHttpRequestEventTarget": true,
	"XMLHttpRequestUpload": true,
	"XMLSerializer": true,
	"XPathEvaluator": true,
	"XPathExpression": true,
	"XPathResult": true,
	"XSLTProcessor": true,
	"alert": true,
	"atob": true,
	"blur": true,
	"btoa": true,
	"cancelAnimationFrame": true,
	"captureEvents": true,
	"clearInterval": true,
	"clearTimeout": true,
	"close": true,
	"closed": true,
	"confirm": true,
	"console": true,
	"customElements": true,
	"decodeURI": true,
	"decodeURIComponent": true,
	"devicePixelRatio": true,
	"document": true,
	"encodeURI": true,
	"encodeURIComponent": true,
	"escape": true,
	"event": true,
	"fetch": true,
	"find": true,
	"focus": true,
	"frameElement": true,
	"frames": true,
	"getComputedStyle": true,
	"getSelection": true,
	"globalThis": true,
	"history": true,
	"indexedDB": true,
	"isFinite": true,
	"isNaN": true,
	"isSecureContext": true,
	"length": true,
	"location": true,
	"locationbar": true,
	"matchMedia": true,
	"menubar": true,
	"moveBy": true,
	"moveTo": true,
	"name": true,
	"navigator": true,
	"onabort": true,
	"onafterprint": true,
	"onanimationend": true,
	"onanimationiteration": true,
	"onanimationstart": true,
	"onbeforeprint": true,
	"onbeforeunload": true,
	"onblur": true,
	"oncanplay": true,
	"oncanplaythrough": true,
	"onchange": true,
	"onclick": true,
	"oncontextmenu": true,
	"oncuechange": true,
	"ondblclick": true,
	"ondrag": true,
	"ondragend": true,
	"ondragenter": true,
	"ondragleave": true,
	"ondragover": true,
	"ondragstart": true,
	"ondrop": true,
	"ondurationchange": true,
	"onemptied": true,
	"onended": true,
	"onerror": true,
	"onfocus": true,
	"ongotpointercapture": true,
	"onhashchange": true,
	"oninput": true,
	"oninvalid": true,
	"onkeydown": true,
	"onkeypress": true,
	"onkeyup": true,
	"onlanguagechange": true,
	"onload": true,
	"onloadeddata": true,
	"onloadedmetadata": true,
	"onloadstart": true,
	"onlostpointercapture": true,
	"onmessage": true,
	"onmousedown": true,
	"onmouseenter": true,
	"onmouseleave": true,
	"onmousemove": true,
	"onmouseout": true,
	"onmouseover": true,
	"onmouseup": true,
	"onoffline": true,
	"ononline": true,
	"onpagehide": true,
	"onpageshow": true,
	"onpause": true,
	"onplay": true,
	"onplaying": true,
	"onpointercancel": true,
	"onpointerdown": true,
	"onpointerenter": true,
	"onpointerleave": true,
	"onpointermove": true,
	"onpointerout": true,
	"onpointerover": true,
	"onpointerup": true,
	"onpopstate": true,
	"onprogress": true,
	"onratechange": true,
	"onrejectionhandled": true,
	"onreset": true,
	"onresize": true,
	"onscroll": true,
	"onseeked": true,
	"onseeking": true,
	"onselect": true,
	"onstalled": true,
	"onstorage": true,
	"onsubmit": true,
	"onsuspend": true,
	"ontimeupdate": true,
	"ontoggle": true,
	"ontransitioncancel": true,
	"ontransitionend": true,
	"ontransitionrun": true,
	"ontransitionstart": true,
	"onunhandledrejection": true,
	"onunload": true,
	"onvolumechange": true,
	"onwaiting": true,
	"onwebkitanimationend": true,
	"onwebkitanimationiteration": true,
	"onwebkitanimationstart": true,
	"onwebkittransitionend": true,
	"onwheel": true,
	"open": true,
	"opener": true,
	"origin": true,
	"outerHeight": true,
	"outerWidth": true,
	"parent": true,
	"parseFloat": true,
	"parseInt": true,
	"performance": true,
	"personalbar": true,
	"postMessage": true,
	"print": true,
	"prompt": true,
	"queueMicrotask": true,
	"releaseEvents": true,
	"requestAnimationFrame": true,
	"resizeBy": true,
	"resizeTo": true,
	"screen": true,
	"screenLeft": true,
	"screenTop": true,
	"screenX": true,
	"screenY": true,
	"scroll": true,
	"scrollBy": true,
	"scrollTo": true,
	"scrollbars": true,
	"self": true,
	"setInterval": true,
	"setTimeout": true,
	"speechSynthesis": true,
	"status": true,
	"statusbar": true,
	"stop": true,
	"toolbar": true,
	"top": true,
	"unescape": true,
	"webkitURL": true,
	"window": true,
}
